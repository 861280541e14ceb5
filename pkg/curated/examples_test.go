package curated

import (
	"strings"
	"testing"

	"github.com/rajeshr264/puppet-llm-training-project/models"
)

func TestExamples(t *testing.T) {
	examples := Examples()
	if len(examples) == 0 {
		t.Fatal("curated set must not be empty")
	}

	for i, ex := range examples {
		if strings.TrimSpace(ex.Code) == "" {
			t.Errorf("examples[%d] has empty code", i)
		}
		if ex.Description == "" {
			t.Errorf("examples[%d] has empty description", i)
		}
		if ex.PuppetScore != models.MaxScore {
			t.Errorf("examples[%d] score = %d, want %d", i, ex.PuppetScore, models.MaxScore)
		}
		if ex.Origin != models.OriginCurated {
			t.Errorf("examples[%d] origin = %q, want %q", i, ex.Origin, models.OriginCurated)
		}
	}
}

func TestExamplesReturnsCopy(t *testing.T) {
	first := Examples()
	first[0].Code = "mutated"

	if Examples()[0].Code == "mutated" {
		t.Error("mutating the returned slice must not affect later calls")
	}
}
