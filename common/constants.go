package common

const (
	// SrcFileExtension is the file extension for Sable source files.
	SrcFileExtension = ".sbl"

	// ModuleFileName is the name of the Sable module configuration file.
	ModuleFileName = "sable-mod.toml"

	// SableVersion is the current version of the Sable compiler.
	SableVersion = "0.1.0"
)
