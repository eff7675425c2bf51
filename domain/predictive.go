package domain

// CREATE TABLE public.predictive_data (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     type            TEXT NOT NULL,
//     feature_name    TEXT NOT NULL,
//     coefficient     NUMERIC NOT NULL,
//     feature         NUMERIC NOT NULL
// );

type PredictiveData struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement" json:"-"`
	Type        string  `gorm:"column:type;type:text;not null" json:"type,omitempty"`
	FeatureName string  `gorm:"column:feature_name;type:text;not null" json:"feature_name"`
	Coefficient float64 `gorm:"column:coefficient;type:numeric" json:"coefficient"`
	Feature     float64 `gorm:"column:feature;type:numeric" json:"feature"`
}

func (PredictiveData) TableName() string {
	return "predictive_data"
}

// Feature is one named model input with its coefficient.
type Feature struct {
	Name        string
	Coefficient float64
	Value       float64
}

// Contribution is coefficient * value.
func (f Feature) Contribution() float64 {
	return f.Coefficient * f.Value
}

type Explanation struct {
	MostInfluentialFeature string  `json:"mostInfluentialFeature"`
	Contribution           float64 `json:"contribution"`
}

type PredictionResult struct {
	Prediction  float64     `json:"prediction"`
	Explanation Explanation `json:"explanation"`
}
