package services_test

import (
	"sort"
	"strings"
	"sync"
	"time"

	"fithub_backend/internal/email"
	"fithub_backend/internal/models"
	"fithub_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory реализации репозиториев. Повторяют контракты SQL-слоя,
// включая условные обновления, поэтому гонки в тестах реальные.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmailAndRole(email string, role models.UserRole) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.Role == role {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createLocked(user)
}

func (r *fakeUserRepo) createLocked(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByRole(role models.UserRole) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type fakeApplicationRepo struct {
	mu    sync.Mutex
	apps  map[string]*models.TrainerApplication
	users *fakeUserRepo
}

func newFakeApplicationRepo(users *fakeUserRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:  make(map[string]*models.TrainerApplication),
		users: users,
	}
}

func (r *fakeApplicationRepo) Create(app *models.TrainerApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	copied := *app
	r.apps[app.ID] = &copied
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.TrainerApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.apps[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) HasPendingByEmail(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.Email == email && a.Status == models.ApplicationStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) ListPending() ([]models.TrainerApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TrainerApplication
	for _, a := range r.apps {
		if a.Status == models.ApplicationStatusPending {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.Before(out[j].AppliedAt) })
	return out, nil
}

func (r *fakeApplicationRepo) ListAll() ([]models.TrainerApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TrainerApplication
	for _, a := range r.apps {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

// ApproveAndCreateTrainer повторяет транзакционный контракт SQL-слоя:
// смена статуса и создание аккаунта атомарны под одним мьютексом.
func (r *fakeApplicationRepo) ApproveAndCreateTrainer(id, reviewedBy, adminNotes string, reviewedAt time.Time) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	if app.Status != models.ApplicationStatusPending {
		return nil, repositories.ErrApplicationAlreadyReviewed
	}

	trainer := &models.User{
		Email:           app.Email,
		PasswordHash:    app.PasswordHash,
		Role:            models.UserRoleTrainer,
		Status:          models.UserStatusActive,
		FirstName:       app.FirstName,
		LastName:        app.LastName,
		Phone:           app.Phone,
		Experience:      app.Experience,
		Certifications:  app.Certifications,
		Specializations: app.Specializations,
		Bio:             app.Bio,
		TrainerStatus:   models.TrainerStatusProfessional,
		ApprovedAt:      &reviewedAt,
		ApprovedBy:      reviewedBy,
	}

	r.users.mu.Lock()
	err := r.users.createLocked(trainer)
	r.users.mu.Unlock()
	if err != nil {
		return nil, err
	}

	app.Status = models.ApplicationStatusApproved
	app.ReviewedAt = &reviewedAt
	app.ReviewedBy = reviewedBy
	app.AdminNotes = adminNotes
	app.TrainerUserID = trainer.ID
	return trainer, nil
}

func (r *fakeApplicationRepo) Reject(id, reviewedBy, reason, adminNotes string, reviewedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	if app.Status != models.ApplicationStatusPending {
		return repositories.ErrApplicationAlreadyReviewed
	}

	app.Status = models.ApplicationStatusRejected
	app.ReviewedAt = &reviewedAt
	app.ReviewedBy = reviewedBy
	app.RejectionReason = reason
	app.AdminNotes = adminNotes
	return nil
}

func (r *fakeApplicationRepo) CountPending() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.apps {
		if a.Status == models.ApplicationStatusPending {
			n++
		}
	}
	return n, nil
}

type fakeTutorialRepo struct {
	mu        sync.Mutex
	tutorials map[string]*models.Tutorial
}

func newFakeTutorialRepo() *fakeTutorialRepo {
	return &fakeTutorialRepo{tutorials: make(map[string]*models.Tutorial)}
}

func (r *fakeTutorialRepo) Create(tutorial *models.Tutorial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tutorial.ID == "" {
		tutorial.ID = uuid.NewString()
	}
	tutorial.CreatedAt = time.Now()
	copied := *tutorial
	r.tutorials[tutorial.ID] = &copied
	return nil
}

func (r *fakeTutorialRepo) ListByTrainer(trainerEmail string) ([]models.Tutorial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Tutorial
	for _, t := range r.tutorials {
		if t.TrainerEmail == trainerEmail {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTutorialRepo) UpdateOwned(id, trainerEmail string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tutorials[id]
	if !ok || t.TrainerEmail != trainerEmail {
		return repositories.ErrTutorialNotFound
	}
	for col, val := range updates {
		switch col {
		case "title":
			t.Title = val.(string)
		case "description":
			t.Description = val.(string)
		case "category":
			t.Category = val.(string)
		case "content":
			t.Content = val.(string)
		case "difficulty":
			t.Difficulty = val.(string)
		case "duration":
			t.Duration = val.(string)
		case "video_url":
			t.VideoURL = val.(string)
		case "image_url":
			t.ImageURL = val.(string)
		case "status":
			t.Status = models.TutorialStatus(strings.TrimSpace(val.(string)))
		}
	}
	return nil
}

func (r *fakeTutorialRepo) DeleteOwned(id, trainerEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tutorials[id]
	if !ok || t.TrainerEmail != trainerEmail {
		return repositories.ErrTutorialNotFound
	}
	delete(r.tutorials, id)
	return nil
}

func (r *fakeTutorialRepo) FindPublishedByID(id string) (*models.Tutorial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tutorials[id]
	if !ok || t.Status != models.TutorialStatusPublished {
		return nil, repositories.ErrTutorialNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTutorialRepo) IncrementViews(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tutorials[id]; ok {
		t.Views++
	}
	return nil
}

func (r *fakeTutorialRepo) ListPublished(limit, offset int) ([]models.Tutorial, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Tutorial
	for _, t := range r.tutorials {
		if t.Status == models.TutorialStatusPublished {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (r *fakeTutorialRepo) CountByTrainer(trainerEmail string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, t := range r.tutorials {
		if t.TrainerEmail == trainerEmail {
			n++
		}
	}
	return n, nil
}

func (r *fakeTutorialRepo) CountByTrainerAndStatus(trainerEmail string, status models.TutorialStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, t := range r.tutorials {
		if t.TrainerEmail == trainerEmail && t.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeTutorialRepo) SumViewsByTrainer(trainerEmail string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum int64
	for _, t := range r.tutorials {
		if t.TrainerEmail == trainerEmail {
			sum += t.Views
		}
	}
	return sum, nil
}

func (r *fakeTutorialRepo) SumLikesByTrainer(trainerEmail string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum int64
	for _, t := range r.tutorials {
		if t.TrainerEmail == trainerEmail {
			sum += t.Likes
		}
	}
	return sum, nil
}

func (r *fakeTutorialRepo) CountPublished() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, t := range r.tutorials {
		if t.Status == models.TutorialStatusPublished {
			n++
		}
	}
	return n, nil
}

type fakeQueryRepo struct {
	mu      sync.Mutex
	queries map[string]*models.Query
}

func newFakeQueryRepo() *fakeQueryRepo {
	return &fakeQueryRepo{queries: make(map[string]*models.Query)}
}

func (r *fakeQueryRepo) Create(query *models.Query) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if query.ID == "" {
		query.ID = uuid.NewString()
	}
	query.CreatedAt = time.Now()
	copied := *query
	r.queries[query.ID] = &copied
	return nil
}

func (r *fakeQueryRepo) FindByID(id string) (*models.Query, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q, ok := r.queries[id]; ok {
		copied := *q
		return &copied, nil
	}
	return nil, repositories.ErrQueryNotFound
}

func (r *fakeQueryRepo) ListForTrainer(trainerEmail string) ([]models.Query, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Query
	for _, q := range r.queries {
		if q.AssignedTrainer == nil || *q.AssignedTrainer == trainerEmail {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Assign повторяет условный UPDATE SQL-слоя: проверка и запись под
// одним мьютексом.
func (r *fakeQueryRepo) Assign(id, trainerEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.queries[id]
	if !ok {
		return repositories.ErrQueryNotFound
	}
	if q.Status == models.QueryStatusResolved {
		return repositories.ErrQueryAlreadyAssigned
	}
	if q.AssignedTrainer != nil && *q.AssignedTrainer != trainerEmail {
		return repositories.ErrQueryAlreadyAssigned
	}

	q.AssignedTrainer = &trainerEmail
	q.Status = models.QueryStatusAssigned
	return nil
}

func (r *fakeQueryRepo) Respond(id, trainerEmail, response string, respondedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.queries[id]
	if !ok || q.AssignedTrainer == nil || *q.AssignedTrainer != trainerEmail || q.Status != models.QueryStatusAssigned {
		return repositories.ErrQueryNotAssigned
	}

	q.Response = response
	q.RespondedAt = &respondedAt
	q.Status = models.QueryStatusResolved
	return nil
}

func (r *fakeQueryRepo) CountAssigned(trainerEmail string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, q := range r.queries {
		if q.AssignedTrainer != nil && *q.AssignedTrainer == trainerEmail {
			n++
		}
	}
	return n, nil
}

func (r *fakeQueryRepo) CountAssignedWithStatus(trainerEmail string, status models.QueryStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, q := range r.queries {
		if q.AssignedTrainer != nil && *q.AssignedTrainer == trainerEmail && q.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeQueryRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.queries)), nil
}

func (r *fakeQueryRepo) CountWithStatus(status models.QueryStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, q := range r.queries {
		if q.Status == status {
			n++
		}
	}
	return n, nil
}

type sentEmail struct {
	To       []string
	Subject  string
	Template string
}

// fakeEmailProvider запоминает отправленные письма для проверок.
type fakeEmailProvider struct {
	mu   sync.Mutex
	sent []sentEmail
}

func (p *fakeEmailProvider) Send(_ *email.Email) error { return nil }

func (p *fakeEmailProvider) SendTemplate(to []string, subject string, templateName string, _ email.TemplateData) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, sentEmail{To: to, Subject: subject, Template: templateName})
	return nil
}

func (p *fakeEmailProvider) Close() error { return nil }

func (p *fakeEmailProvider) sentCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}
