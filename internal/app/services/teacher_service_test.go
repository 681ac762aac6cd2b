package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
)

func TestCreateTeacherCreatesUserAndTeacherRow(t *testing.T) {
	t.Parallel()

	var createdUser *models.User
	userRepo := &mockUserStore{
		createTxFn: func(ctx context.Context, tx pgx.Tx, user *models.User) error {
			user.ID = 11
			createdUser = user
			return nil
		},
	}
	teacherRepo := &mockTeacherStore{
		createTxFn: func(ctx context.Context, tx pgx.Tx, teacher *models.Teacher) error {
			teacher.ID = 3
			return nil
		},
	}

	svc := NewTeacherService(&mockTxRunner{}, teacherRepo, userRepo)

	teacher, err := svc.CreateTeacher(context.Background(), 1, &dto.CreateTeacherRequest{
		EmployeeNo: "EMP007",
		FirstName:  "Meera",
		LastName:   "Iyer",
		Email:      "Meera.Iyer@Greenwood.EDU",
		Specialty:  "Mathematics",
	})
	require.NoError(t, err)

	require.Equal(t, int64(3), teacher.ID)
	require.Equal(t, int64(11), teacher.UserID)
	require.Equal(t, "EMP007", teacher.EmployeeNo)
	require.True(t, teacher.IsActive)

	require.NotNil(t, createdUser)
	require.Equal(t, models.RoleTeacher, createdUser.RoleType)
	require.Equal(t, "meera.iyer@greenwood.edu", createdUser.Email, "email is lowercased")
	require.NotEmpty(t, createdUser.Password, "a random password is hashed and stored")
}

func TestUpdateTeacherRenamesBackingUser(t *testing.T) {
	t.Parallel()

	userRepo := &mockUserStore{
		getByIDFn: func(ctx context.Context, schoolID, id int64) (*models.User, error) {
			return &models.User{ID: id, SchoolID: schoolID, FirstName: "Meera", LastName: "Iyer", IsActive: true}, nil
		},
	}

	var renamed bool
	userRepo.updateNameTxFn = func(ctx context.Context, tx pgx.Tx, schoolID, id int64, firstName, lastName string) error {
		renamed = true
		require.Equal(t, "Maya", firstName)
		require.Equal(t, "Iyer", lastName)
		return nil
	}

	var savedSpecialty string
	teacherRepo := &mockTeacherStore{
		getByIDFn: func(ctx context.Context, schoolID, id int64) (*models.Teacher, error) {
			return &models.Teacher{ID: id, SchoolID: schoolID, UserID: 11, Specialty: "Mathematics", IsActive: true}, nil
		},
		updateFn: func(ctx context.Context, teacher *models.Teacher) error {
			savedSpecialty = teacher.Specialty
			return nil
		},
	}

	svc := NewTeacherService(&mockTxRunner{}, teacherRepo, userRepo)

	newFirst := "Maya"
	newSpecialty := "Physics"
	teacher, err := svc.UpdateTeacher(context.Background(), 1, 3, &dto.UpdateTeacherRequest{
		FirstName: &newFirst,
		Specialty: &newSpecialty,
	})
	require.NoError(t, err)
	require.True(t, renamed)
	require.Equal(t, "Physics", savedSpecialty)
	require.Equal(t, "Maya", teacher.User.FirstName)
	require.Equal(t, "Iyer", teacher.User.LastName, "unset name part is kept")
}

func TestUpdateTeacherSkipsUserWriteWhenNameUnchanged(t *testing.T) {
	t.Parallel()

	userRepo := &mockUserStore{
		getByIDFn: func(ctx context.Context, schoolID, id int64) (*models.User, error) {
			return &models.User{ID: id, SchoolID: schoolID, FirstName: "Meera", LastName: "Iyer", IsActive: true}, nil
		},
		updateNameTxFn: func(ctx context.Context, tx pgx.Tx, schoolID, id int64, firstName, lastName string) error {
			t.Fatal("user rename should not be issued when the name is unchanged")
			return nil
		},
	}
	teacherRepo := &mockTeacherStore{
		getByIDFn: func(ctx context.Context, schoolID, id int64) (*models.Teacher, error) {
			return &models.Teacher{ID: id, SchoolID: schoolID, UserID: 11, IsActive: true}, nil
		},
	}

	svc := NewTeacherService(&mockTxRunner{}, teacherRepo, userRepo)

	newSpecialty := "Chemistry"
	_, err := svc.UpdateTeacher(context.Background(), 1, 3, &dto.UpdateTeacherRequest{Specialty: &newSpecialty})
	require.NoError(t, err)
}

func TestDeleteTeacherDeactivatesUser(t *testing.T) {
	t.Parallel()

	teacherRepo := &mockTeacherStore{
		getByIDFn: func(ctx context.Context, schoolID, id int64) (*models.Teacher, error) {
			return &models.Teacher{ID: id, SchoolID: schoolID, UserID: 42, IsActive: true}, nil
		},
	}

	var softDeleted, deactivated bool
	teacherRepo.softDeleteTxFn = func(ctx context.Context, tx pgx.Tx, schoolID, id int64) error {
		softDeleted = true
		return nil
	}
	userRepo := &mockUserStore{
		deactivateTxFn: func(ctx context.Context, tx pgx.Tx, schoolID, id int64) error {
			require.Equal(t, int64(42), id)
			deactivated = true
			return nil
		},
	}

	svc := NewTeacherService(&mockTxRunner{}, teacherRepo, userRepo)

	require.NoError(t, svc.DeleteTeacher(context.Background(), 1, 3))
	require.True(t, softDeleted)
	require.True(t, deactivated)
}

func TestGetTeachersHydratesUsers(t *testing.T) {
	t.Parallel()

	teacherRepo := &mockTeacherStore{
		getAllFn: func(ctx context.Context, schoolID int64) ([]*models.Teacher, error) {
			return []*models.Teacher{
				{ID: 1, SchoolID: schoolID, UserID: 10},
				{ID: 2, SchoolID: schoolID, UserID: 20},
			}, nil
		},
	}
	userRepo := &mockUserStore{
		getByIDFn: func(ctx context.Context, schoolID, id int64) (*models.User, error) {
			return &models.User{ID: id, SchoolID: schoolID, FirstName: "T", IsActive: true}, nil
		},
	}

	svc := NewTeacherService(&mockTxRunner{}, teacherRepo, userRepo)

	teachers, err := svc.GetTeachers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	require.Equal(t, int64(10), teachers[0].User.ID)
	require.Equal(t, int64(20), teachers[1].User.ID)
}
