package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"

	"github.com/google/uuid"
)

type firestorePostRepository struct {
	client *firestore.Client
}

func NewFirestorePostRepository(client *firestore.Client) repository.PostRepository {
	return &firestorePostRepository{
		client: client,
	}
}

func (r *firestorePostRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("posts").Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create post", err)
	}

	return nil
}

func (r *firestorePostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	doc, err := r.client.Collection("posts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Post", err)
		}
		return nil, errors.Internal("Failed to get post", err)
	}

	var post entity.Post
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse post data", err)
	}

	return &post, nil
}

func (r *firestorePostRepository) Update(ctx context.Context, post *entity.Post) error {
	_, err := r.client.Collection("posts").Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to update post", err)
	}

	return nil
}

func (r *firestorePostRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("posts").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete post", err)
	}

	return nil
}

func (r *firestorePostRepository) List(ctx context.Context, filter repository.PostFilter, limit, offset int) ([]*entity.Post, int64, error) {
	query := r.client.Collection("posts").Query
	if filter.AuthorEmail != "" {
		query = query.Where("authorEmail", "==", filter.AuthorEmail)
	}

	// Popularity orders by vote score, which is a derived value, so the
	// result set is fetched and sorted in memory. Firestore cannot order
	// by the difference of two fields.
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list posts", err)
	}

	var posts []*entity.Post
	for _, doc := range docs {
		var post entity.Post
		if err := doc.DataTo(&post); err != nil {
			return nil, 0, errors.Internal("Failed to parse post data", err)
		}
		posts = append(posts, &post)
	}

	if filter.Popular {
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Score() > posts[j].Score()
		})
	} else {
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	}

	total := int64(len(posts))
	return paginatePosts(posts, limit, offset), total, nil
}

func (r *firestorePostRepository) CountByAuthor(ctx context.Context, authorEmail string) (int, error) {
	docs, err := r.client.Collection("posts").Where("authorEmail", "==", authorEmail).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count posts", err)
	}

	return len(docs), nil
}

func (r *firestorePostRepository) Search(ctx context.Context, query string, limit, offset int) ([]*entity.Post, int64, error) {
	// Firestore has no substring search, so all posts are scanned and
	// matched in memory. A query starting with "#" matches the tag exactly.
	docs, err := r.client.Collection("posts").Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to search posts", err)
	}

	tagQuery := ""
	if strings.HasPrefix(query, "#") {
		tagQuery = strings.TrimPrefix(query, "#")
	}
	needle := strings.ToLower(query)

	var matched []*entity.Post
	for _, doc := range docs {
		var post entity.Post
		if err := doc.DataTo(&post); err != nil {
			continue
		}

		if tagQuery != "" {
			if strings.EqualFold(post.Tag, tagQuery) {
				matched = append(matched, &post)
			}
			continue
		}

		if strings.Contains(strings.ToLower(post.PostTitle), needle) ||
			strings.Contains(strings.ToLower(post.Tag), needle) {
			matched = append(matched, &post)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	return paginatePosts(matched, limit, offset), total, nil
}

func paginatePosts(posts []*entity.Post, limit, offset int) []*entity.Post {
	if limit <= 0 {
		return posts
	}

	start := offset
	end := offset + limit
	if start >= len(posts) {
		return []*entity.Post{}
	}
	if end > len(posts) {
		end = len(posts)
	}

	return posts[start:end]
}
