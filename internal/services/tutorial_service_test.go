package services_test

import (
	"encoding/json"
	"testing"

	"fithub_backend/internal/models"
	"fithub_backend/internal/services"
	"fithub_backend/internal/services/dto"
	"fithub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTutorialEnv() (*fakeTutorialRepo, *fakeUserRepo, services.TutorialService) {
	tutorials := newFakeTutorialRepo()
	users := newFakeUserRepo()
	svc := services.NewTutorialService(tutorials, users)
	return tutorials, users, svc
}

func createTutorialRequest() *dto.CreateTutorialRequest {
	return &dto.CreateTutorialRequest{
		Title:       "Приседания со штангой",
		Description: "Техника базового приседа",
		Category:    "strength",
		Content:     "Разбор техники по шагам...",
		Difficulty:  "intermediate",
		Duration:    "15 мин",
		Tags:        []string{"ноги", "база"},
	}
}

func TestCreateTutorial_Defaults(t *testing.T) {
	t.Parallel()

	_, users, svc := newTutorialEnv()
	require.NoError(t, users.Create(&models.User{
		Email:     "trainer@test.com",
		Role:      models.UserRoleTrainer,
		FirstName: "Айгерим",
		LastName:  "Сатпаева",
	}))

	req := createTutorialRequest()
	req.Difficulty = ""

	tutorial, err := svc.Create("trainer@test.com", req)
	require.NoError(t, err)

	assert.Equal(t, "beginner", tutorial.Difficulty)
	assert.Equal(t, models.TutorialStatusPublished, tutorial.Status)
	assert.Equal(t, "trainer@test.com", tutorial.TrainerEmail)
	assert.Equal(t, "Айгерим Сатпаева", tutorial.TrainerName)

	var tags []string
	require.NoError(t, json.Unmarshal(tutorial.Tags, &tags))
	assert.Equal(t, []string{"ноги", "база"}, tags)
}

func TestUpdateTutorial_ForeignLooksLikeMissing(t *testing.T) {
	t.Parallel()

	_, _, svc := newTutorialEnv()

	tutorial, err := svc.Create("owner@test.com", createTutorialRequest())
	require.NoError(t, err)

	title := "Чужая правка"
	err = svc.Update("other@test.com", tutorial.ID, &dto.UpdateTutorialRequest{Title: &title})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)

	// Тот же ответ для несуществующего id
	err = svc.Update("owner@test.com", "missing-id", &dto.UpdateTutorialRequest{Title: &title})
	missingErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErr.Message, missingErr.Message)
}

func TestUpdateTutorial_PartialFields(t *testing.T) {
	t.Parallel()

	tutorials, _, svc := newTutorialEnv()

	tutorial, err := svc.Create("owner@test.com", createTutorialRequest())
	require.NoError(t, err)

	title := "Новый заголовок"
	require.NoError(t, svc.Update("owner@test.com", tutorial.ID, &dto.UpdateTutorialRequest{
		Title: &title,
	}))

	updated, err := tutorials.FindPublishedByID(tutorial.ID)
	require.NoError(t, err)
	assert.Equal(t, "Новый заголовок", updated.Title)
	// Непереданные поля не тронуты
	assert.Equal(t, tutorial.Description, updated.Description)
	assert.Equal(t, tutorial.Category, updated.Category)
}

func TestDeleteTutorial_OnlyOwner(t *testing.T) {
	t.Parallel()

	_, _, svc := newTutorialEnv()

	tutorial, err := svc.Create("owner@test.com", createTutorialRequest())
	require.NoError(t, err)

	err = svc.Delete("other@test.com", tutorial.ID)
	require.Error(t, err)

	require.NoError(t, svc.Delete("owner@test.com", tutorial.ID))

	_, err = svc.GetPublished(tutorial.ID)
	assert.Error(t, err)
}

func TestGetPublished_CountsView(t *testing.T) {
	t.Parallel()

	_, _, svc := newTutorialEnv()

	tutorial, err := svc.Create("owner@test.com", createTutorialRequest())
	require.NoError(t, err)

	first, err := svc.GetPublished(tutorial.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Views)

	second, err := svc.GetPublished(tutorial.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Views)
}

func TestGetPublished_DraftHidden(t *testing.T) {
	t.Parallel()

	_, _, svc := newTutorialEnv()

	req := createTutorialRequest()
	req.Status = "draft"

	tutorial, err := svc.Create("owner@test.com", req)
	require.NoError(t, err)

	_, err = svc.GetPublished(tutorial.ID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestListPublished_PaginationClamping(t *testing.T) {
	t.Parallel()

	_, _, svc := newTutorialEnv()

	for i := 0; i < 3; i++ {
		_, err := svc.Create("owner@test.com", createTutorialRequest())
		require.NoError(t, err)
	}

	// Некорректные значения приводятся к дефолтам
	tutorials, total, err := svc.ListPublished(-1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, tutorials, 3)

	tutorials, total, err = svc.ListPublished(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, tutorials, 1)
}
