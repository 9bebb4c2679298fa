package workload

// Base implements the identity half of the Workload contract (ID, Name,
// Description, Category, EstimatedDurationSeconds) so each concrete
// workload only has to embed it and implement Run.
type Base struct {
	IDValue          string
	NameValue        string
	DescriptionValue string
	CategoryValue    Category
	EstimatedSeconds int
}

func (b Base) ID() string                      { return b.IDValue }
func (b Base) Name() string                     { return b.NameValue }
func (b Base) Description() string              { return b.DescriptionValue }
func (b Base) Category() Category               { return b.CategoryValue }
func (b Base) EstimatedDurationSeconds() int    { return b.EstimatedSeconds }
