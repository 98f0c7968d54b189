package mods

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"

	"sablec/common"
)

// tomlModuleFile represents the module file as it is encoded in TOML.
type tomlModuleFile struct {
	Module *tomlModule `toml:"module"`
}

// tomlModule represents a Sable module as it is encoded in TOML.
type tomlModule struct {
	Name         string `toml:"name"`
	SableVersion string `toml:"sable-version"`
	OutputDir    string `toml:"output,omitempty"`
	LLCPath      string `toml:"llc,omitempty"`
	LLIPath      string `toml:"lli,omitempty"`
	Debug        bool   `toml:"debug"`
}

// LoadModule loads and validates the module configuration for the given
// source file.  If the source file's directory contains no module file, the
// derived defaults are returned instead.
func LoadModule(srcPath string) (*SableModule, error) {
	mod := DefaultModule(srcPath)

	modFilePath := filepath.Join(mod.ModuleRoot, common.ModuleFileName)
	f, err := os.Open(modFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return mod, nil
		}

		return nil, err
	}
	defer f.Close()

	// unmarshal the contents
	buff, err := os.ReadFile(modFilePath)
	if err != nil {
		return nil, err
	}

	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, fmt.Errorf("error parsing module file at `%s`: %s", modFilePath, err)
	}

	// ensure that the module contents are valid
	if err := validateModule(tmf.Module, modFilePath); err != nil {
		return nil, err
	}

	// move the relevant TOML attributes over to the Sable module
	mod.Name = tmf.Module.Name

	if tmf.Module.OutputDir != "" {
		if filepath.IsAbs(tmf.Module.OutputDir) {
			mod.OutputDir = tmf.Module.OutputDir
		} else {
			mod.OutputDir = filepath.Join(mod.ModuleRoot, tmf.Module.OutputDir)
		}
	}

	if tmf.Module.LLCPath != "" {
		mod.LLCPath = tmf.Module.LLCPath
	}

	if tmf.Module.LLIPath != "" {
		mod.LLIPath = tmf.Module.LLIPath
	}

	mod.Debug = tmf.Module.Debug

	return mod, nil
}

// validateModule checks that the top level module contents are valid.
func validateModule(mod *tomlModule, modFilePath string) error {
	if mod == nil {
		return fmt.Errorf("missing [module] table in module file at `%s`", modFilePath)
	}

	if mod.Name == "" {
		return fmt.Errorf("missing module name in module file at `%s`", modFilePath)
	}

	// only the major and minor components of the version are binding
	if mod.SableVersion != "" && !strings.HasPrefix(common.SableVersion, majorMinor(mod.SableVersion)) {
		return fmt.Errorf("module requires Sable `%s` but the compiler is `%s`", mod.SableVersion, common.SableVersion)
	}

	return nil
}

// majorMinor trims a semantic version string to its major.minor prefix.
func majorMinor(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return version
	}

	return parts[0] + "." + parts[1]
}
