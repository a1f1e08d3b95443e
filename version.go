package mfl

// Version is the interpreter version reported by the CLI.
var Version = "0.1.0"
