// Package models defines the data structures shared between pipeline stages.
package models

// Origin identifies where an extracted example came from.
type Origin string

const (
	OriginRawFile        Origin = "raw_file"
	OriginGithubManifest Origin = "github_manifest"
	OriginHTMLElement    Origin = "html_element"
	OriginPDFBlock       Origin = "pdf_block"
	OriginCurated        Origin = "curated"
)

// Example is one extracted candidate snippet with provenance and a
// heuristic confidence score. Raw manifest files and curated examples get
// the fixed maximal score; HTML and PDF extraction compute it.
type Example struct {
	Code           string   `json:"code"`
	Description    string   `json:"description"`
	Source         string   `json:"source"`
	PuppetScore    int      `json:"puppet_score"`
	Origin         Origin   `json:"origin"`
	ElementTag     string   `json:"element_tag,omitempty"`
	ElementClasses []string `json:"element_classes,omitempty"`
}

// MaxScore is the fixed confidence assigned to sources that are known to be
// Puppet code without scoring (raw .pp files, curated examples, PDF blocks
// that passed the structural filter).
const MaxScore = 10

// TrainingExample is a finalized, cleaned corpus entry.
type TrainingExample struct {
	Instruction string `json:"instruction"`
	Output      string `json:"output"`
	Source      string `json:"source"`
}

// CorpusRecord is the wire form the fine-tuning stage consumes: the
// instruction folded into a leading comment above the code.
type CorpusRecord struct {
	Text string `json:"text"`
}
