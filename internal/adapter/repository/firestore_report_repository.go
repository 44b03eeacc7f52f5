package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"

	"github.com/google/uuid"
)

type firestoreReportRepository struct {
	client *firestore.Client
}

func NewFirestoreReportRepository(client *firestore.Client) repository.ReportRepository {
	return &firestoreReportRepository{
		client: client,
	}
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *entity.CommentReport) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.ReportedAt.IsZero() {
		report.ReportedAt = time.Now()
	}

	// Duplicate reports from the same reporter are accepted; the client
	// disables the report button after the first one, the store does not.
	_, err := r.client.Collection("commentReports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to create comment report", err)
	}

	return nil
}

func (r *firestoreReportRepository) List(ctx context.Context, limit, offset int) ([]*entity.CommentReport, int64, error) {
	query := r.client.Collection("commentReports").Query

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count comment reports", err)
	}
	total := int64(len(countDocs))

	// Admin console shows newest reports first.
	query = query.OrderBy("reportedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var reports []*entity.CommentReport

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list comment reports", err)
		}

		var report entity.CommentReport
		if err := doc.DataTo(&report); err != nil {
			return nil, 0, errors.Internal("Failed to parse comment report data", err)
		}
		reports = append(reports, &report)
	}

	return reports, total, nil
}

func (r *firestoreReportRepository) DeleteByReporter(ctx context.Context, reporterEmail string) error {
	docs, err := r.client.Collection("commentReports").Where("reportedBy", "==", reporterEmail).Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to query comment reports", err)
	}

	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to delete comment report", err)
		}
	}

	return nil
}
