package moderation

import "embed"

// DictionaryDir is the folder of Dictionary holding one file per language.
const DictionaryDir = "censored"

//go:embed censored/*.txt
var Dictionary embed.FS
