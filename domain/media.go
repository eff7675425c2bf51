package domain

// CREATE TABLE public.movies (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     title           TEXT NOT NULL,
//     genre           TEXT NOT NULL,
//     rating          NUMERIC,
//     release_year    INT,
//     director        TEXT,
//     description     TEXT
// );

// Media is a read-only snapshot of a movies row. Genre holds a
// comma-separated list such as "Action, Drama".
type Media struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"column:title;type:text;not null" json:"title"`
	Genre       string  `gorm:"column:genre;type:text;not null" json:"genre"`
	Rating      float64 `gorm:"column:rating;type:numeric" json:"rating"`
	ReleaseYear int     `gorm:"column:release_year" json:"release_year,omitempty"`
	Director    string  `gorm:"column:director;type:text" json:"director,omitempty"`
	Description string  `gorm:"column:description;type:text" json:"description,omitempty"`
}

func (Media) TableName() string {
	return "movies"
}

type SimilarityResult struct {
	SelectedMedia   Media   `json:"selectedMedia"`
	Recommendations []Media `json:"recommendations"`
}
