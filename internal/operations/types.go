package operations

// Pipeline step identifiers
const (
	StepIDGenerate = "generate"
	StepIDAnalyze  = "analyze"
	StepIDRender   = "render"
)

// Pipeline step names
const (
	StepNameGenerate = "Data Generation"
	StepNameAnalyze  = "Data Analysis"
	StepNameRender   = "Report Rendering"
)

// Metadata keys recorded on step states
const (
	MetadataKeyPath    = "path"
	MetadataKeyRecords = "records"
	MetadataKeyOutput  = "output"
)

// Phase is the furthest point a run has reached
type Phase string

const (
	PhaseInit      Phase = "INIT"
	PhaseGenerated Phase = "GENERATED"
	PhaseAnalyzed  Phase = "ANALYZED"
	PhaseRendered  Phase = "RENDERED"
)

// phaseOrder lists the phases in the only order a run may take
var phaseOrder = []Phase{PhaseInit, PhaseGenerated, PhaseAnalyzed, PhaseRendered}

func (p Phase) index() int {
	for i, q := range phaseOrder {
		if p == q {
			return i
		}
	}
	return -1
}

// Next returns the phase that follows p, or "" for the last phase
func (p Phase) Next() Phase {
	i := p.index()
	if i < 0 || i+1 >= len(phaseOrder) {
		return ""
	}
	return phaseOrder[i+1]
}
