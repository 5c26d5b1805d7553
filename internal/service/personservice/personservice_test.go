package personservice

import (
	"context"
	"errors"
	"testing"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestListStudents(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Legacy sheet keys flatten to canonical fields", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any(), domain.BorrowerStudent, 1, 50).Return([]domain.Person{
			{ID: 1, Doc: domain.Document{
				"Nombre Del Alumno:\n(Completo)": "Ana López Garza",
				"Boleta":                         "2023630123",
				"Correo":                         "ana@alumno.ipn.mx",
				"Grupo":                          "3IM7",
				"Tipo de Carga(Horario)\n(MEDIA, MINIMA o COMPLETA)": "COMPLETA",
			}},
			{ID: 2, Doc: domain.Document{"Nombre": "Luis Pérez", "boleta": "2023630456"}},
		}, nil)
		repo.EXPECT().Count(gomock.Any(), domain.BorrowerStudent).Return(2, nil)

		students, total, err := service.ListStudents(context.Background(), 0, 0)
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, "Ana López Garza", students[0].Name)
		assert.Equal(t, "2023630123", students[0].Boleta)
		assert.Equal(t, "COMPLETA", students[0].Load)
		assert.Equal(t, "Luis Pérez", students[1].Name)
		assert.Equal(t, "2023630456", students[1].Boleta)
	})

	t.Run("Repo failure propagates", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any(), domain.BorrowerStudent, 1, 50).Return(nil, errors.New("db error"))

		_, _, err := service.ListStudents(context.Background(), 1, 50)
		assert.Error(t, err)
	})
}

func TestListStaff(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().All(gomock.Any(), domain.BorrowerStaff).Return([]domain.Person{
		{ID: 1, Doc: domain.Document{
			"Nombre Completo":             "María Hernández",
			"No Empleado":                 "E-0042",
			"Correo":                      "maria@cecyt.mx",
			"Turno":                       "Matutino",
			"Ocupación \n(Docente u otro)": "Docente",
		}},
	}, nil)

	staff, err := service.ListStaff(context.Background())
	assert.NoError(t, err)
	assert.Len(t, staff, 1)
	assert.Equal(t, "María Hernández", staff[0].Name)
	assert.Equal(t, "E-0042", staff[0].EmployeeNo)
	assert.Equal(t, "Docente", staff[0].Occupation)
}

func TestRegisterStudent(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Save(gomock.Any(), domain.BorrowerStudent, domain.Document{
		"Nombre": "Ana López Garza",
		"Boleta": "2023630123",
		"Correo": "ana@alumno.ipn.mx",
		"Grupo":  "3IM7",
		"Carga":  "MEDIA",
	}).Return(nil)

	err := service.RegisterStudent(context.Background(), domain.Document{
		"nombre": "Ana López Garza",
		"boleta": "2023630123",
		"correo": "ana@alumno.ipn.mx",
		"grupo":  "3IM7",
		"carga":  "MEDIA",
	})
	assert.NoError(t, err)
}

func TestRegisterStaff(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Occupation defaults to Docente", func(t *testing.T) {
		repo.EXPECT().Save(gomock.Any(), domain.BorrowerStaff, domain.Document{
			"Nombre Completo":             "María Hernández",
			"No Empleado":                 "E-0042",
			"Correo":                      "maria@cecyt.mx",
			"Turno":                       "Vespertino",
			"Ocupación \n(Docente u otro)": "Docente",
		}).Return(nil)

		err := service.RegisterStaff(context.Background(), domain.Document{
			"Nombre":      "María Hernández",
			"No Empleado": "E-0042",
			"Correo":      "maria@cecyt.mx",
			"Turno":       "Vespertino",
		})
		assert.NoError(t, err)
	})

	t.Run("Explicit occupation is kept", func(t *testing.T) {
		repo.EXPECT().Save(gomock.Any(), domain.BorrowerStaff, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, doc domain.Document) error {
				assert.Equal(t, "Prefecto", doc["Ocupación \n(Docente u otro)"])
				return nil
			})

		err := service.RegisterStaff(context.Background(), domain.Document{
			"Nombre":    "Jorge Ruiz",
			"Ocupacion": "Prefecto",
		})
		assert.NoError(t, err)
	})
}

func TestFindStudent(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Blank boleta is rejected", func(t *testing.T) {
		_, err := service.FindStudent(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrIdentifierRequired)
	})

	t.Run("Unknown boleta returns nothing", func(t *testing.T) {
		repo.EXPECT().FindByIdentifier(gomock.Any(), domain.BorrowerStudent, "999").Return(nil, nil)

		student, err := service.FindStudent(context.Background(), "999")
		assert.NoError(t, err)
		assert.Nil(t, student)
	})

	t.Run("Match is flattened", func(t *testing.T) {
		repo.EXPECT().FindByIdentifier(gomock.Any(), domain.BorrowerStudent, "2023630123").
			Return(&domain.Person{ID: 1, Doc: domain.Document{"Nombre": "Ana López Garza", "Boleta": "2023630123"}}, nil)

		student, err := service.FindStudent(context.Background(), "2023630123")
		assert.NoError(t, err)
		assert.Equal(t, "Ana López Garza", student.Name)
	})

	t.Run("Repo failure propagates", func(t *testing.T) {
		repo.EXPECT().FindByIdentifier(gomock.Any(), domain.BorrowerStudent, "2023630123").
			Return(nil, errors.New("db error"))

		_, err := service.FindStudent(context.Background(), "2023630123")
		assert.Error(t, err)
	})
}

func TestFindStaff(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Blank employee number is rejected", func(t *testing.T) {
		_, err := service.FindStaff(context.Background(), "")
		assert.ErrorIs(t, err, ErrIdentifierRequired)
	})

	t.Run("Match is flattened", func(t *testing.T) {
		repo.EXPECT().FindByIdentifier(gomock.Any(), domain.BorrowerStaff, "E-0042").
			Return(&domain.Person{ID: 1, Doc: domain.Document{"Nombre Completo": "María Hernández", "No Empleado": "E-0042"}}, nil)

		staff, err := service.FindStaff(context.Background(), "E-0042")
		assert.NoError(t, err)
		assert.Equal(t, "María Hernández", staff.Name)
	})
}

func TestSearchStudents(t *testing.T) {
	service, repo := NewMock(t)

	people := []domain.Person{
		{ID: 1, Doc: domain.Document{"Nombre": "Ana López Garza", "Boleta": "2023630123"}},
		{ID: 2, Doc: domain.Document{"Nombre": "Luis Pérez", "Boleta": "2023630456"}},
	}

	t.Run("Name matches ignore accents and case", func(t *testing.T) {
		repo.EXPECT().All(gomock.Any(), domain.BorrowerStudent).Return(people, nil)

		students, err := service.SearchStudents(context.Background(), "lopez")
		assert.NoError(t, err)
		assert.Len(t, students, 1)
		assert.Equal(t, "Ana López Garza", students[0].Name)
	})

	t.Run("Boleta matches", func(t *testing.T) {
		repo.EXPECT().All(gomock.Any(), domain.BorrowerStudent).Return(people, nil)

		students, err := service.SearchStudents(context.Background(), "630456")
		assert.NoError(t, err)
		assert.Len(t, students, 1)
		assert.Equal(t, "Luis Pérez", students[0].Name)
	})

	t.Run("Empty query matches nothing", func(t *testing.T) {
		repo.EXPECT().All(gomock.Any(), domain.BorrowerStudent).Return(people, nil)

		students, err := service.SearchStudents(context.Background(), "")
		assert.NoError(t, err)
		assert.Empty(t, students)
	})
}
