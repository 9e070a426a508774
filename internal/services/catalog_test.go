package services

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	types "github.com/skillone/skillpath-backend/internal/domain"
)

func TestCatalogListCourses(t *testing.T) {
	courses := &fakeCourseRepo{rows: testCatalog()}
	svc := NewCatalogService(courses, nil, newTestLog(t))

	rows, err := svc.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != "c1" {
		t.Fatalf("rows: got=%+v", rows)
	}

	courses.listErr = fmt.Errorf("db down")
	_, err = svc.ListCourses(context.Background())
	wantAPIError(t, err, http.StatusInternalServerError, "load_catalog_failed")
}

func TestSeedCourses(t *testing.T) {
	courses := &fakeCourseRepo{}
	svc := NewCatalogService(courses, nil, newTestLog(t))

	n, err := svc.SeedCourses(context.Background(), testCatalog(), false)
	if err != nil {
		t.Fatalf("SeedCourses: %v", err)
	}
	if n != 2 || len(courses.upserted) != 2 {
		t.Fatalf("seeded count: want=2 got n=%d upserted=%d", n, len(courses.upserted))
	}
	if want := []string{"upsert"}; !reflect.DeepEqual(courses.operations, want) {
		t.Fatalf("operations: want=%v got=%v", want, courses.operations)
	}
}

func TestSeedCoursesTruncateFirst(t *testing.T) {
	courses := &fakeCourseRepo{rows: testCatalog()}
	svc := NewCatalogService(courses, nil, newTestLog(t))

	if _, err := svc.SeedCourses(context.Background(), testCatalog(), true); err != nil {
		t.Fatalf("SeedCourses: %v", err)
	}
	if want := []string{"delete", "upsert"}; !reflect.DeepEqual(courses.operations, want) {
		t.Fatalf("operations: want=%v got=%v", want, courses.operations)
	}
}

func TestSeedCoursesValidatesRows(t *testing.T) {
	svc := NewCatalogService(&fakeCourseRepo{}, nil, newTestLog(t))

	_, err := svc.SeedCourses(context.Background(), []*types.Course{{ID: " ", Title: "x"}}, false)
	wantAPIError(t, err, http.StatusBadRequest, "invalid_course_id")

	_, err = svc.SeedCourses(context.Background(), []*types.Course{{ID: "c1"}}, false)
	wantAPIError(t, err, http.StatusBadRequest, "invalid_course_title")
}

func TestSeedCoursesUpsertError(t *testing.T) {
	courses := &fakeCourseRepo{upsertErr: fmt.Errorf("insert failed")}
	svc := NewCatalogService(courses, nil, newTestLog(t))

	_, err := svc.SeedCourses(context.Background(), testCatalog(), false)
	wantAPIError(t, err, http.StatusInternalServerError, "seed_catalog_failed")
}

func TestSeedCoursesTruncateError(t *testing.T) {
	courses := &fakeCourseRepo{deleteErr: fmt.Errorf("delete failed")}
	svc := NewCatalogService(courses, nil, newTestLog(t))

	_, err := svc.SeedCourses(context.Background(), testCatalog(), true)
	wantAPIError(t, err, http.StatusInternalServerError, "truncate_catalog_failed")
}
