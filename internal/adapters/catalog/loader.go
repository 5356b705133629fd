// Package catalog loads medical centers and exams from a YAML file.
package catalog

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
)

type centerEntry struct {
	ID        string `koanf:"id"`
	Name      string `koanf:"name"`
	Location  string `koanf:"location"`
	Doctor    string `koanf:"doctor"`
	Specialty string `koanf:"specialty"`
}

type examEntry struct {
	ID    string `koanf:"id"`
	Name  string `koanf:"name"`
	Code  string `koanf:"code"`
	Price int64  `koanf:"price"`
}

type catalogFile struct {
	Centers []centerEntry `koanf:"centers"`
	Exams   []examEntry   `koanf:"exams"`
}

// Load reads the catalog at path. An empty path yields the built-in
// catalog, and a file that omits one of the two lists keeps the built-in
// entries for it.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return domain.DefaultCatalog(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var f catalogFile
	if err := k.Unmarshal("", &f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	centers := domain.DefaultCenters()
	if k.Exists("centers") {
		centers = make([]domain.MedicalCenter, 0, len(f.Centers))
		for _, c := range f.Centers {
			centers = append(centers, domain.MedicalCenter(c))
		}
	}

	exams := domain.DefaultExams()
	if k.Exists("exams") {
		exams = make([]domain.Exam, 0, len(f.Exams))
		for _, e := range f.Exams {
			exams = append(exams, domain.Exam(e))
		}
	}

	return domain.NewCatalog(centers, exams)
}
