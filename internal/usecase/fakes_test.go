package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/internal/domain/service"
	"codecircle/pkg/errors"
)

// In-memory repository fakes. Values are copied on the way in and out so a
// caller mutating a returned entity does not silently change the store, same
// as a document database would behave.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *user
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) DeleteByEmail(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	for id, user := range r.users {
		if user.Email == email {
			delete(r.users, id)
			found = true
		}
	}
	if !found {
		return errors.NotFound("User", nil)
	}
	return nil
}

func (r *memUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		cp := *user
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Email < all[j].Email })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type memPostRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[string]*entity.Post)}
}

func (r *memPostRepo) Create(ctx context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *memPostRepo) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}
	cp := *post
	return &cp, nil
}

func (r *memPostRepo) Update(ctx context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; !ok {
		return errors.NotFound("Post", nil)
	}
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *memPostRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return errors.NotFound("Post", nil)
	}
	delete(r.posts, id)
	return nil
}

func (r *memPostRepo) List(ctx context.Context, filter repository.PostFilter, limit, offset int) ([]*entity.Post, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Post, 0, len(r.posts))
	for _, post := range r.posts {
		if filter.AuthorEmail != "" && post.AuthorEmail != filter.AuthorEmail {
			continue
		}
		cp := *post
		all = append(all, &cp)
	}
	if filter.Popular {
		sort.SliceStable(all, func(i, j int) bool { return all[i].Score() > all[j].Score() })
	} else {
		sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memPostRepo) CountByAuthor(ctx context.Context, authorEmail string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, post := range r.posts {
		if post.AuthorEmail == authorEmail {
			count++
		}
	}
	return count, nil
}

func (r *memPostRepo) Search(ctx context.Context, query string, limit, offset int) ([]*entity.Post, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Post
	if tag, ok := strings.CutPrefix(query, "#"); ok {
		for _, post := range r.posts {
			if strings.EqualFold(post.Tag, tag) {
				cp := *post
				matched = append(matched, &cp)
			}
		}
	} else {
		needle := strings.ToLower(query)
		for _, post := range r.posts {
			if strings.Contains(strings.ToLower(post.PostTitle), needle) ||
				strings.Contains(strings.ToLower(post.Tag), needle) {
				cp := *post
				matched = append(matched, &cp)
			}
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type memCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*entity.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[string]*entity.Comment)}
}

func (r *memCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *memCommentRepo) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[id]
	if !ok {
		return nil, errors.NotFound("Comment", nil)
	}
	cp := *comment
	return &cp, nil
}

func (r *memCommentRepo) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Comment
	for _, comment := range r.comments {
		if comment.PostID == postID {
			cp := *comment
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memCommentRepo) CountByPost(ctx context.Context, postID string) (int64, error) {
	comments, _ := r.ListByPost(ctx, postID)
	return int64(len(comments)), nil
}

type memReportRepo struct {
	mu      sync.Mutex
	reports map[string]*entity.CommentReport
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{reports: make(map[string]*entity.CommentReport)}
}

func (r *memReportRepo) Create(ctx context.Context, report *entity.CommentReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *report
	r.reports[report.ID] = &cp
	return nil
}

func (r *memReportRepo) List(ctx context.Context, limit, offset int) ([]*entity.CommentReport, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.CommentReport, 0, len(r.reports))
	for _, report := range r.reports {
		cp := *report
		all = append(all, &cp)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].ReportedAt.After(all[j].ReportedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memReportRepo) DeleteByReporter(ctx context.Context, reporterEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, report := range r.reports {
		if report.ReportedBy == reporterEmail {
			delete(r.reports, id)
		}
	}
	return nil
}

type memNotificationRepo struct {
	mu       sync.Mutex
	active   map[string]*entity.Notification
	archived map[string]*entity.Notification
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{
		active:   make(map[string]*entity.Notification),
		archived: make(map[string]*entity.Notification),
	}
}

func (r *memNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *notification
	r.active[notification.ID] = &cp
	return nil
}

func (r *memNotificationRepo) ListActive(ctx context.Context, userEmail string) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Notification
	for _, n := range r.active {
		if n.UserEmail == userEmail {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memNotificationRepo) MarkAllRead(ctx context.Context, userEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.active {
		if n.UserEmail == userEmail {
			n.IsRead = true
		}
	}
	return nil
}

func (r *memNotificationRepo) ArchiveAll(ctx context.Context, userEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, n := range r.active {
		if n.UserEmail == userEmail {
			r.archived[id] = n
			delete(r.active, id)
		}
	}
	return nil
}

func (r *memNotificationRepo) ListArchive(ctx context.Context, userEmail string, limit, offset int) ([]*entity.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Notification
	for _, n := range r.archived {
		if n.UserEmail == userEmail {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
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

func (r *memNotificationRepo) DeleteArchived(ctx context.Context, userEmail, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.archived[id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	if notification.UserEmail != userEmail {
		return errors.Forbidden("You can only delete your own notifications", nil)
	}
	delete(r.archived, id)
	return nil
}

type memPlanRepo struct {
	plans map[string]*entity.MembershipPlan
}

func newMemPlanRepo(plans ...*entity.MembershipPlan) *memPlanRepo {
	r := &memPlanRepo{plans: make(map[string]*entity.MembershipPlan)}
	for _, p := range plans {
		r.plans[p.ID] = p
	}
	return r
}

func (r *memPlanRepo) GetByID(ctx context.Context, id string) (*entity.MembershipPlan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, errors.NotFound("Membership plan", nil)
	}
	cp := *plan
	return &cp, nil
}

func (r *memPlanRepo) List(ctx context.Context) ([]*entity.MembershipPlan, error) {
	out := make([]*entity.MembershipPlan, 0, len(r.plans))
	for _, p := range r.plans {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memPaymentRepo struct {
	mu       sync.Mutex
	payments []*entity.Payment
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{}
}

func (r *memPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *payment
	r.payments = append(r.payments, &cp)
	return nil
}

func (r *memPaymentRepo) ListByEmail(ctx context.Context, userEmail string) ([]*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.UserEmail == userEmail {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Payment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := int64(len(r.payments))
	if offset >= len(r.payments) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(r.payments) {
		end = len(r.payments)
	}
	out := make([]*entity.Payment, 0, end-offset)
	for _, p := range r.payments[offset:end] {
		cp := *p
		out = append(out, &cp)
	}
	return out, total, nil
}

type memTagRepo struct {
	mu   sync.Mutex
	tags map[string]*entity.Tag
}

func newMemTagRepo() *memTagRepo {
	return &memTagRepo{tags: make(map[string]*entity.Tag)}
}

func (r *memTagRepo) Create(ctx context.Context, tag *entity.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *tag
	r.tags[tag.ID] = &cp
	return nil
}

func (r *memTagRepo) GetByName(ctx context.Context, name string) (*entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tag := range r.tags {
		if strings.EqualFold(tag.Tag, name) {
			cp := *tag
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Tag", nil)
}

func (r *memTagRepo) List(ctx context.Context) ([]*entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Tag, 0, len(r.tags))
	for _, tag := range r.tags {
		cp := *tag
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out, nil
}

type memMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{}
}

func (r *memMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *message
	r.messages = append(r.messages, &cp)
	return nil
}

func (r *memMessageRepo) List(ctx context.Context) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Message, 0, len(r.messages))
	for _, m := range r.messages {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

// fakeIdentityProvider records provider-side deletes.

type fakeIdentityProvider struct {
	mu       sync.Mutex
	accounts map[string]string // email -> uid
	deleted  []string
}

func newFakeIdentityProvider() *fakeIdentityProvider {
	return &fakeIdentityProvider{accounts: make(map[string]string)}
}

func (f *fakeIdentityProvider) LookupEmail(ctx context.Context, email string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	uid, ok := f.accounts[email]
	if !ok {
		return "", errors.NotFound("Account", nil)
	}
	return uid, nil
}

func (f *fakeIdentityProvider) DeleteUser(ctx context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, uid)
	return nil
}

type fakeGateway struct {
	lastRequest service.PaymentIntentRequest
}

func (f *fakeGateway) CreatePaymentIntent(ctx context.Context, req service.PaymentIntentRequest) (*service.PaymentIntentResponse, error) {
	f.lastRequest = req
	return &service.PaymentIntentResponse{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       req.AmountInCents,
		Currency:     req.Currency,
	}, nil
}

type fakeBroadcaster struct {
	mu       sync.Mutex
	messages [][]byte
}

func (f *fakeBroadcaster) Broadcast(message []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(key string, maxTokens, refillRate int, refillTime time.Duration) (bool, time.Duration) {
	return true, 0
}

type denyLimiter struct{}

func (denyLimiter) Allow(key string, maxTokens, refillRate int, refillTime time.Duration) (bool, time.Duration) {
	return false, time.Second
}
