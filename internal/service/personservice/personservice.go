package personservice

import (
	"context"
	"errors"
	"strings"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/pkg/fields"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context, kind string, page, pageSize int) ([]domain.Person, error)
	All(ctx context.Context, kind string) ([]domain.Person, error)
	Count(ctx context.Context, kind string) (int, error)
	Save(ctx context.Context, kind string, doc domain.Document) error
	FindByIdentifier(ctx context.Context, kind, identifier string) (*domain.Person, error)
}

var ErrIdentifierRequired = errors.New("identifier required")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Student is a registry record flattened to canonical fields. The legacy
// import sheets used key spellings like "Nombre Del Alumno:\n(Completo)".
type Student struct {
	Name   string `json:"name"`
	Boleta string `json:"boleta"`
	Email  string `json:"email"`
	Group  string `json:"group"`
	Load   string `json:"load"`
}

type Staff struct {
	Name       string `json:"name"`
	EmployeeNo string `json:"employee_no"`
	Email      string `json:"email"`
	Shift      string `json:"shift"`
	Occupation string `json:"occupation"`
}

var (
	studentNameKeys = []string{"Nombre", "nombre", "Nombre Del Alumno:\n(Completo)", "Nombre Completo"}
	studentLoadKeys = []string{"Carga", "carga", "Tipo de Carga(Horario)\n(MEDIA, MINIMA o COMPLETA)"}
)

func flattenStudent(doc domain.Document) Student {
	return Student{
		Name:   fields.ResolveString(doc, studentNameKeys...),
		Boleta: fields.ResolveString(doc, "Boleta", "boleta"),
		Email:  fields.ResolveString(doc, "Correo", "correo", "Email", "email"),
		Group:  fields.ResolveString(doc, "Grupo", "grupo"),
		Load:   fields.ResolveString(doc, studentLoadKeys...),
	}
}

func flattenStaff(doc domain.Document) Staff {
	occupation := fields.ResolveString(doc, "Ocupación \n(Docente u otro)", "Ocupacion", "ocupacion", "Cargo", "cargo")
	return Staff{
		Name:       fields.ResolveString(doc, "Nombre Completo", "Nombre", "nombre"),
		EmployeeNo: fields.ResolveString(doc, "No Empleado", "NoEmpleado", "no_empleado", "noEmpleado"),
		Email:      fields.ResolveString(doc, "Correo", "correo"),
		Shift:      fields.ResolveString(doc, "Turno", "turno"),
		Occupation: occupation,
	}
}

func (s *Service) ListStudents(ctx context.Context, page, pageSize int) ([]Student, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	people, err := s.repo.List(ctx, domain.BorrowerStudent, page, pageSize)
	if err != nil {
		zap.L().Error("failed to list students", zap.Error(err))
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domain.BorrowerStudent)
	if err != nil {
		return nil, 0, err
	}

	students := make([]Student, 0, len(people))
	for _, p := range people {
		students = append(students, flattenStudent(p.Doc))
	}
	return students, total, nil
}

func (s *Service) ListStaff(ctx context.Context) ([]Staff, error) {
	people, err := s.repo.All(ctx, domain.BorrowerStaff)
	if err != nil {
		zap.L().Error("failed to list staff", zap.Error(err))
		return nil, err
	}
	staff := make([]Staff, 0, len(people))
	for _, p := range people {
		staff = append(staff, flattenStaff(p.Doc))
	}
	return staff, nil
}

// RegisterStudent normalizes the incoming payload to canonical keys before
// storing, so at least records created here are clean.
func (s *Service) RegisterStudent(ctx context.Context, payload domain.Document) error {
	doc := domain.Document{
		"Nombre": fields.ResolveString(payload, studentNameKeys...),
		"Boleta": fields.ResolveString(payload, "Boleta", "boleta"),
		"Correo": fields.ResolveString(payload, "Correo", "correo"),
		"Grupo":  fields.ResolveString(payload, "Grupo", "grupo"),
		"Carga":  fields.ResolveString(payload, studentLoadKeys...),
	}
	return s.repo.Save(ctx, domain.BorrowerStudent, doc)
}

func (s *Service) RegisterStaff(ctx context.Context, payload domain.Document) error {
	occupation := fields.ResolveString(payload, "Ocupacion", "ocupacion", "Cargo", "cargo")
	if strings.TrimSpace(occupation) == "" {
		occupation = "Docente"
	}
	doc := domain.Document{
		"Nombre Completo": fields.ResolveString(payload, "Nombre", "nombre"),
		"No Empleado":     fields.ResolveString(payload, "No. Empleado", "no_empleado", "No Empleado"),
		"Correo":          fields.ResolveString(payload, "Correo", "correo"),
		"Turno":           fields.ResolveString(payload, "Turno", "turno"),
	}
	doc["Ocupación \n(Docente u otro)"] = occupation
	return s.repo.Save(ctx, domain.BorrowerStaff, doc)
}

func (s *Service) FindStudent(ctx context.Context, boleta string) (*Student, error) {
	if strings.TrimSpace(boleta) == "" {
		return nil, ErrIdentifierRequired
	}
	p, err := s.repo.FindByIdentifier(ctx, domain.BorrowerStudent, boleta)
	if err != nil {
		zap.L().Error("failed to find student", zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	student := flattenStudent(p.Doc)
	return &student, nil
}

func (s *Service) FindStaff(ctx context.Context, employeeNo string) (*Staff, error) {
	if strings.TrimSpace(employeeNo) == "" {
		return nil, ErrIdentifierRequired
	}
	p, err := s.repo.FindByIdentifier(ctx, domain.BorrowerStaff, employeeNo)
	if err != nil {
		zap.L().Error("failed to find staff member", zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	staff := flattenStaff(p.Doc)
	return &staff, nil
}

// SearchStudents matches name or boleta, ignoring accents and case.
func (s *Service) SearchStudents(ctx context.Context, query string) ([]Student, error) {
	q := strings.ToLower(fields.Normalize(query))
	people, err := s.repo.All(ctx, domain.BorrowerStudent)
	if err != nil {
		return nil, err
	}

	var matches []Student
	for _, p := range people {
		st := flattenStudent(p.Doc)
		haystack := strings.ToLower(fields.Normalize(st.Name + "\x00" + st.Boleta))
		if q != "" && strings.Contains(haystack, q) {
			matches = append(matches, st)
		}
	}
	return matches, nil
}

func (s *Service) CountStudents(ctx context.Context) (int, error) {
	return s.repo.Count(ctx, domain.BorrowerStudent)
}
