// Package seed loads catalogue datasets (menu, reviews, chef recommendations and
// contact messages) from local files or S3 and writes them through the repositories.
package seed

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cuisinecraft-hub/internal/model"
)

// Dataset is the JSON document a seed file holds.
type Dataset struct {
	Menu            []model.MenuItem       `json:"menu"`
	Reviews         []model.Review         `json:"reviews"`
	Recommendations []model.Recommendation `json:"chefRecommendations"`
	ContactMessages []model.ContactMessage `json:"contactUs"`
}

// Size is the total number of records in the dataset.
func (d *Dataset) Size() int {
	return len(d.Menu) + len(d.Reviews) + len(d.Recommendations) + len(d.ContactMessages)
}

// decode reads a dataset from r, decompressing it when name ends in .gz.
func decode(r io.Reader, name string) (*Dataset, error) {
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gz.Close()
		r = gz
	}

	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", name, err)
	}

	return &ds, nil
}
