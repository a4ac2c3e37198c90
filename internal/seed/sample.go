package seed

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"cuisinecraft-hub/internal/model"
)

var sampleCategories = []string{"salad", "pizza", "soup", "dessert", "drinks"}

var sampleDishes = map[string][]string{
	"salad":   {"Caesar Salad", "Greek Salad", "Caprese", "Nicoise"},
	"pizza":   {"Margherita", "Pepperoni", "Quattro Formaggi", "Diavola"},
	"soup":    {"Tomato Soup", "Minestrone", "French Onion", "Pho"},
	"dessert": {"Tiramisu", "Panna Cotta", "Cheesecake", "Creme Brulee"},
	"drinks":  {"Lemonade", "Iced Tea", "Espresso", "Mango Lassi"},
}

// GenerateSample builds a dataset with every sample dish, a few reviews and
// recommendations, and one contact message. The same seed yields the same dataset.
func GenerateSample(seed int64) *Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := &Dataset{}

	for _, category := range sampleCategories {
		for _, name := range sampleDishes[category] {
			ds.Menu = append(ds.Menu, model.MenuItem{
				Name:     name,
				Recipe:   fmt.Sprintf("House recipe for %s.", strings.ToLower(name)),
				Image:    fmt.Sprintf("https://images.example.com/%s.jpg", slug(name)),
				Category: category,
				Price:    float64(500+rng.Intn(2000)) / 100,
			})
		}
	}

	for i := 0; i < 6; i++ {
		ds.Reviews = append(ds.Reviews, model.Review{
			Name:    fmt.Sprintf("Guest %d", i+1),
			Details: "Lovely food and friendly staff.",
			Rating:  float64(3 + rng.Intn(3)),
		})
	}

	for _, i := range rng.Perm(len(ds.Menu))[:3] {
		m := ds.Menu[i]
		ds.Recommendations = append(ds.Recommendations, model.Recommendation{
			Name:     m.Name,
			Recipe:   m.Recipe,
			Image:    m.Image,
			Category: m.Category,
			Price:    m.Price,
		})
	}

	ds.ContactMessages = append(ds.ContactMessages, model.ContactMessage{
		Name:      "Sample Visitor",
		Email:     "visitor@example.com",
		Message:   "Do you take group bookings?",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	})

	return ds
}

// WriteFile writes ds as JSON to path, gzipped when path ends in .gz.
func WriteFile(path string, ds *Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	var w io.Writer = file
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(file)
		w = gz
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("failed to write dataset to %s: %w", path, err)
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("failed to flush %s: %w", path, err)
		}
	}

	return nil
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
