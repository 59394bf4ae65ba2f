package notion

// Property names of the study databases. They must match the column names
// configured in the Notion workspace.
const (
	DateProperty     = "Tarih"
	SubjectProperty  = "Ders"
	DurationProperty = "Süre"
)

// TopicProperties lists the columns that may hold a task's topic, in lookup order:
// the dedicated column, Notion's default title column, then a lowercase variant.
var TopicProperties = []string{"Konu", "Name", "konu"}
