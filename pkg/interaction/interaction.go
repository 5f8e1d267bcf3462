// Package interaction decides when toss asks before acting.
package interaction

import (
	"fmt"

	"github.com/arthur-debert/toss/pkg/logging"
	"github.com/arthur-debert/toss/pkg/types"
)

// DefaultOnceThreshold is the argument count above which once mode prompts
const DefaultOnceThreshold = 3

// Policy applies an interactive mode through a Confirmer
type Policy struct {
	mode      types.InteractiveMode
	threshold int
	confirmer types.Confirmer
}

// New creates a Policy. A negative threshold means DefaultOnceThreshold.
func New(mode types.InteractiveMode, threshold int, confirmer types.Confirmer) *Policy {
	if threshold < 0 {
		threshold = DefaultOnceThreshold
	}
	if mode == "" {
		mode = types.InteractiveNever
	}
	return &Policy{mode: mode, threshold: threshold, confirmer: confirmer}
}

// Mode returns the active mode
func (p *Policy) Mode() types.InteractiveMode {
	return p.mode
}

// ConfirmBatch asks once for the whole run in once mode, when more than the
// threshold of arguments were given or the run is recursive. A refusal means
// nothing at all may be removed.
func (p *Policy) ConfirmBatch(count int, recursive bool) bool {
	if p.mode != types.InteractiveOnce {
		return true
	}
	if count <= p.threshold && !recursive {
		return true
	}

	noun := "arguments"
	if count == 1 {
		noun = "argument"
	}
	suffix := "?"
	if recursive {
		suffix = " recursively?"
	}
	return p.ask(fmt.Sprintf("remove %d %s%s", count, noun, suffix))
}

// ConfirmItem asks before each removal in always mode
func (p *Policy) ConfirmItem(entry types.Entry, emptyDirMode bool) bool {
	if p.mode != types.InteractiveAlways {
		return true
	}
	if emptyDirMode {
		return p.ask(fmt.Sprintf("remove empty directory '%s'?", entry.Path))
	}
	return p.ask(fmt.Sprintf("remove '%s'?", entry.Path))
}

// ConfirmPermanent asks before bypassing the trash. It prompts in every mode.
func (p *Policy) ConfirmPermanent(path string) bool {
	return p.ask(fmt.Sprintf("remove '%s' PERMANENTLY?", path))
}

// ask treats a missing confirmer and read errors as refusal
func (p *Policy) ask(prompt string) bool {
	if p.confirmer == nil {
		return false
	}
	ok, err := p.confirmer.Confirm(prompt)
	if err != nil {
		logger := logging.GetLogger("interaction")
		logger.Debug().Err(err).Str("prompt", prompt).Msg("No answer, treating as refusal")
		return false
	}
	return ok
}
