package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/streetbrawl/shared/stagedata"
)

var (
	//go:embed all:stages
	stageFS embed.FS
)

// MustLoadStage parses an embedded stage map, panicking on malformed content.
func MustLoadStage(path string) *stagedata.Stage {
	stage, err := stagedata.Load(stageFS, path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load stage %s: %v", path, err))
	}
	return stage
}

// StageNames lists the embedded stages.
func StageNames() ([]string, error) {
	_, names, err := stagedata.LoadAll(stageFS, "stages")
	return names, err
}
