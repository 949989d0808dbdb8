package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/frostodev/sedona/internal/model"
)

// SubjectRef is a subject entry for the cascading selectors.
type SubjectRef struct {
	ID   int    `gorm:"column:id"   json:"id"`
	Code string `gorm:"column:code" json:"code"`
	Name string `gorm:"column:name" json:"name"`
}

// SectionRef is a section entry for the cascading selectors.
type SectionRef struct {
	ID    int    `gorm:"column:id"    json:"id"`
	Label string `gorm:"column:label" json:"label"`
}

// CatalogRepository serves the selector lookups (campus → semester → subject
// → section).
type CatalogRepository interface {
	ListCampuses(ctx context.Context) ([]model.Campus, error)
	// ListSemesters returns the semester codes of one campus, newest first.
	ListSemesters(ctx context.Context, campus string) ([]string, error)
	ListSubjects(ctx context.Context, scope Scope) ([]SubjectRef, error)
	ListSections(ctx context.Context, subjectID int) ([]SectionRef, error)
}

type catalogRepo struct {
	db *gorm.DB
}

// NewCatalogRepo creates a CatalogRepository instance.
func NewCatalogRepo(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListCampuses(ctx context.Context) ([]model.Campus, error) {
	var campuses []model.Campus
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&campuses).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list campuses: %v", ErrStorage, err)
	}
	return campuses, nil
}

func (r *catalogRepo) ListSemesters(ctx context.Context, campus string) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&model.Semester{}).
		Joins("JOIN campuses ON campuses.id = semesters.campus_id").
		Where("campuses.name = ?", campus).
		Order("semesters.code DESC").
		Pluck("semesters.code", &codes).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list semesters: %v", ErrStorage, err)
	}
	return codes, nil
}

func (r *catalogRepo) ListSubjects(ctx context.Context, scope Scope) ([]SubjectRef, error) {
	var subjects []SubjectRef
	err := r.db.WithContext(ctx).
		Model(&model.Subject{}).
		Select("subjects.id, subjects.code, subjects.name").
		Joins("JOIN semesters ON semesters.id = subjects.semester_id").
		Joins("JOIN campuses ON campuses.id = semesters.campus_id").
		Where("campuses.name = ? AND semesters.code = ?", scope.Campus, scope.Semester).
		Order("subjects.name ASC").
		Scan(&subjects).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list subjects: %v", ErrStorage, err)
	}
	return subjects, nil
}

func (r *catalogRepo) ListSections(ctx context.Context, subjectID int) ([]SectionRef, error) {
	var sections []SectionRef
	err := r.db.WithContext(ctx).
		Model(&model.Section{}).
		Select("sections.id, sections.label").
		Where("subject_id = ?", subjectID).
		Order("label ASC").
		Scan(&sections).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list sections: %v", ErrStorage, err)
	}
	return sections, nil
}
