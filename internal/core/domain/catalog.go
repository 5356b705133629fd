package domain

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MedicalCenter is a place where an imaging order can be requested.
type MedicalCenter struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
}

// Exam is a selectable catalog item. Price is in whole pesos; zero means
// the exam carries no charge.
type Exam struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	Price int64  `json:"price"`
}

// Catalog is the immutable reference data the services resolve ids against.
type Catalog struct {
	centers []MedicalCenter
	exams   []Exam
}

// NewCatalog validates the reference data. Lookups scan the lists.
func NewCatalog(centers []MedicalCenter, exams []Exam) (*Catalog, error) {
	seen := make(map[string]bool, len(centers))
	for _, c := range centers {
		if c.ID == "" {
			return nil, NewInvalidCatalogError("medical center without id")
		}
		if seen[c.ID] {
			return nil, NewInvalidCatalogError(fmt.Sprintf("duplicate medical center %q", c.ID))
		}
		seen[c.ID] = true
	}

	seen = make(map[string]bool, len(exams))
	for _, e := range exams {
		if e.ID == "" {
			return nil, NewInvalidCatalogError("exam without id")
		}
		if seen[e.ID] {
			return nil, NewInvalidCatalogError(fmt.Sprintf("duplicate exam %q", e.ID))
		}
		if e.Price < 0 {
			return nil, NewInvalidCatalogError(fmt.Sprintf("exam %q has negative price %d", e.ID, e.Price))
		}
		seen[e.ID] = true
	}

	return &Catalog{
		centers: append([]MedicalCenter(nil), centers...),
		exams:   append([]Exam(nil), exams...),
	}, nil
}

// DefaultCatalog returns the built-in reference data.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultCenters(), DefaultExams())
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Centers() []MedicalCenter {
	return append([]MedicalCenter(nil), c.centers...)
}

func (c *Catalog) Exams() []Exam {
	return append([]Exam(nil), c.exams...)
}

func (c *Catalog) Center(id string) (MedicalCenter, bool) {
	for _, center := range c.centers {
		if center.ID == id {
			return center, true
		}
	}
	return MedicalCenter{}, false
}

func (c *Catalog) Exam(id string) (Exam, bool) {
	for _, exam := range c.exams {
		if exam.ID == id {
			return exam, true
		}
	}
	return Exam{}, false
}

// DefaultCenters lists the traumatology centers served out of the box.
func DefaultCenters() []MedicalCenter {
	return []MedicalCenter{
		{
			ID:        "clinica-vina",
			Name:      "Clínica Viña del Mar",
			Location:  "Viña del Mar",
			Doctor:    "Dr. Silva López",
			Specialty: "Traumatología",
		},
		{
			ID:        "hospital-quillota",
			Name:      "Hospital Quillota",
			Location:  "Quillota",
			Doctor:    "Dr. Morales Castro",
			Specialty: "Traumatología",
		},
		{
			ID:        "hospital-osorno",
			Name:      "Hospital Osorno",
			Location:  "Osorno",
			Doctor:    "Dr. Ramírez Soto",
			Specialty: "Traumatología",
		},
	}
}

// DefaultExams lists the exams that can be added to a cart out of the box.
func DefaultExams() []Exam {
	return []Exam{
		{ID: "evaluacion-trauma", Name: "Evaluación Traumatológica", Code: "CON-0101", Price: 0},
		{ID: "rx-rodilla", Name: "Radiografía de Rodilla", Code: "RX-0402", Price: 15000},
		{ID: "eco-hombro", Name: "Ecografía de Hombro", Code: "ECO-0305", Price: 22000},
		{ID: "rm-rodilla", Name: "Resonancia Magnética de Rodilla", Code: "RM-0401", Price: 95000},
		{ID: "rm-columna", Name: "Resonancia Magnética de Columna Lumbar", Code: "RM-0502", Price: 110000},
	}
}

var pricePrinter = message.NewPrinter(language.MustParse("es-CL"))

// FormatPrice renders an amount in pesos for display, "Gratis" when zero.
func FormatPrice(amount int64) string {
	if amount <= 0 {
		return "Gratis"
	}
	return "$" + pricePrinter.Sprintf("%d", amount)
}
