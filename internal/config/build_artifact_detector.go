// Build artifact detection from ActionScript project descriptors
// Parses asconfig.json, .actionScriptProperties and FlashDevelop .as3proj files
package config

import (
	"encoding/json"
	"encoding/xml"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// BuildArtifactDetector finds compiler output directories so generated
// classes under them are not reported as project sources
type BuildArtifactDetector struct {
	projectRoot string
}

// NewBuildArtifactDetector creates a new build artifact detector
func NewBuildArtifactDetector(projectRoot string) *BuildArtifactDetector {
	return &BuildArtifactDetector{projectRoot: projectRoot}
}

// DetectOutputDirectories scans for project descriptors and extracts output directories
// Returns glob patterns to exclude (e.g., "**/bin-debug/**")
func (bad *BuildArtifactDetector) DetectOutputDirectories() []string {
	var patterns []string

	// asconfigc / VS Code ActionScript extension
	patterns = append(patterns, bad.detectASConfigOutputs()...)

	// Flash Builder
	patterns = append(patterns, bad.detectFlashBuilderOutputs()...)

	// FlashDevelop
	patterns = append(patterns, bad.detectFlashDevelopOutputs()...)

	return patterns
}

// detectASConfigOutputs reads compilerOptions.output ("bin/Main.swf") from asconfig.json
func (bad *BuildArtifactDetector) detectASConfigOutputs() []string {
	data, err := os.ReadFile(filepath.Join(bad.projectRoot, "asconfig.json"))
	if err != nil {
		return nil
	}

	var asconfig struct {
		CompilerOptions struct {
			Output string `json:"output"`
		} `json:"compilerOptions"`
	}
	if json.Unmarshal(data, &asconfig) != nil {
		return nil
	}

	return outputPattern(path.Dir(filepath.ToSlash(asconfig.CompilerOptions.Output)))
}

// detectFlashBuilderOutputs reads <compiler outputFolderPath="bin-debug"> from .actionScriptProperties
func (bad *BuildArtifactDetector) detectFlashBuilderOutputs() []string {
	data, err := os.ReadFile(filepath.Join(bad.projectRoot, ".actionScriptProperties"))
	if err != nil {
		return nil
	}

	var props struct {
		Compiler struct {
			OutputFolderPath string `xml:"outputFolderPath,attr"`
		} `xml:"compiler"`
	}
	if xml.Unmarshal(data, &props) != nil {
		return nil
	}

	return outputPattern(filepath.ToSlash(props.Compiler.OutputFolderPath))
}

// detectFlashDevelopOutputs reads <output><movie path="bin\App.swf"/></output> from *.as3proj
func (bad *BuildArtifactDetector) detectFlashDevelopOutputs() []string {
	matches, err := filepath.Glob(filepath.Join(bad.projectRoot, "*.as3proj"))
	if err != nil {
		return nil
	}

	var patterns []string
	for _, projFile := range matches {
		data, err := os.ReadFile(projFile)
		if err != nil {
			continue
		}

		var proj struct {
			Movies []struct {
				Path string `xml:"path,attr"`
			} `xml:"output>movie"`
		}
		if xml.Unmarshal(data, &proj) != nil {
			continue
		}
		for _, m := range proj.Movies {
			if m.Path == "" {
				continue
			}
			// FlashDevelop writes Windows separators regardless of platform
			p := strings.ReplaceAll(m.Path, `\`, "/")
			patterns = append(patterns, outputPattern(path.Dir(p))...)
		}
	}
	return patterns
}

// outputPattern turns a project-relative output directory into an exclusion
// glob. The project root itself and paths escaping it yield nothing.
func outputPattern(dir string) []string {
	if path.IsAbs(dir) {
		return nil
	}
	dir = strings.Trim(path.Clean(dir), "/")
	if dir == "" || dir == "." || strings.HasPrefix(dir, "..") {
		return nil
	}
	return []string{"**/" + dir + "/**"}
}
