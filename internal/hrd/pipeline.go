package hrd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/hr-diagram/internal/config"
	"github.com/ytget/hr-diagram/internal/locale"
	"github.com/ytget/hr-diagram/internal/model"
	"github.com/ytget/hr-diagram/internal/tracks"
)

// PassIDPrefix prefixes every render pass ID
const PassIDPrefix = "pass_"

// Pipeline runs one full render pass: load both track tables, then describe
// one chart per metallicity.
type Pipeline struct {
	loader tracks.Loader
	source string // shown in the missing-files message
}

// NewPipeline creates a pipeline reading tables from dataDir
func NewPipeline(dataDir string) *Pipeline {
	loader := tracks.NewDirLoader(dataDir)
	return NewPipelineWithLoader(loader, loader.Dir)
}

// NewPipelineWithLoader creates a pipeline over any table source
func NewPipelineWithLoader(loader tracks.Loader, source string) *Pipeline {
	return &Pipeline{loader: loader, source: source}
}

// CollectStar reads the star observation from the input store. It returns
// nil while the name is empty; numbers never entered read as zero.
func CollectStar(store config.InputStore) *model.Star {
	name := store.String(config.InputStarName)
	if name == "" {
		return nil
	}
	return &model.Star{
		Name:    name,
		LogTeff: store.Float(config.InputLogTeff),
		LogL:    store.Float(config.InputLogL),
	}
}

// RunInputs collects the star from store and runs a pass
func (p *Pipeline) RunInputs(store config.InputStore) Output {
	return p.Run(CollectStar(store))
}

// Run performs one render pass. A nil star yields an empty output. A missing
// table aborts the pass with a single error naming every expected file.
func (p *Pipeline) Run(star *model.Star) Output {
	out := Output{PassID: generatePassID()}
	if star == nil {
		return out
	}

	names := tracks.FileNames()
	tables := make([]*model.TrackTable, len(names))
	var missing bool
	var loadErr error
	var failedName string
	for i, name := range names {
		table, err := p.loader.Load(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = true
			} else if loadErr == nil {
				loadErr, failedName = err, name
			}
			log.Printf("[hrd] %s: load %s failed: %v", out.PassID, name, err)
			continue
		}
		tables[i] = table
	}

	if missing {
		out.Elements = append(out.Elements, messageElement(model.LevelError, locale.KeyMsgMissingFiles,
			quoteJoin(names), p.source))
		return out
	}
	if loadErr != nil {
		out.Elements = append(out.Elements, messageElement(model.LevelError, locale.KeyMsgLoadFailed,
			failedName, loadErr.Error()))
		return out
	}

	for i, m := range model.Metallicities {
		out.Elements = append(out.Elements, PlotMetallicity(tables[i], m, star)...)
	}

	log.Printf("[hrd] %s: star %q at (%.2f, %.2f), %d chart(s), %d message(s)",
		out.PassID, star.Name, star.LogTeff, star.LogL, len(out.Figures()), len(out.Messages()))
	return out
}

// quoteJoin renders names as 'a' and 'b' (or 'a', 'b' and 'c')
func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
}

// generatePassID uses UUID v7 so pass IDs sort by time in logs
func generatePassID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(PassIDPrefix+"%d", time.Now().UnixNano())
	}
	return PassIDPrefix + id.String()
}
