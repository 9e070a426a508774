package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/skillone/skillpath-backend/internal/app"
	types "github.com/skillone/skillpath-backend/internal/domain"
)

type seedCourse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Tags           []string `json:"tags"`
	Difficulty     string   `json:"difficulty"`
	EducationLevel string   `json:"education_level"`
	Prerequisites  []string `json:"prerequisites"`
}

func main() {
	var file string
	var truncate bool
	flag.StringVar(&file, "file", "", "path to a JSON array of catalog courses (required)")
	flag.BoolVar(&truncate, "truncate", false, "clear the catalog before seeding")
	flag.Parse()

	if file == "" {
		fmt.Println("usage: seedcatalog -file courses.json [-truncate]")
		os.Exit(1)
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		fmt.Printf("read seed file: %v\n", err)
		os.Exit(1)
	}
	var seeds []seedCourse
	if err := json.Unmarshal(raw, &seeds); err != nil {
		fmt.Printf("parse seed file: %v\n", err)
		os.Exit(1)
	}
	if len(seeds) == 0 {
		fmt.Println("seed file contains no courses")
		os.Exit(1)
	}

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	rows := make([]*types.Course, 0, len(seeds))
	for _, s := range seeds {
		rows = append(rows, &types.Course{
			ID:             s.ID,
			Title:          s.Title,
			Description:    s.Description,
			Tags:           types.StringList(s.Tags),
			Difficulty:     s.Difficulty,
			EducationLevel: s.EducationLevel,
			Prerequisites:  types.StringList(s.Prerequisites),
		})
	}

	n, err := application.Services.Catalog.SeedCourses(context.Background(), rows, truncate)
	if err != nil {
		fmt.Printf("seed catalog: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("seeded %d courses (truncate=%v)\n", n, truncate)
}
