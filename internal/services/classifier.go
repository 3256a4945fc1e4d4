package services

import (
	"context"
	"strings"

	"github.com/avoskresensky/user-admin-service/internal/models"
)

// Classification is the duplicate classifier's verdict for one CSV row.
type Classification int

const (
	// ClassificationNew means the email is seen neither in the batch nor
	// in storage; the row should be inserted.
	ClassificationNew Classification = iota
	// ClassificationInBatchDuplicate means an earlier row of the same
	// file already carried this email. Always a row error, regardless of
	// the duplicate strategy.
	ClassificationInBatchDuplicate
	// ClassificationExistingConflict means the email matches a stored
	// record; the duplicate strategy decides what happens.
	ClassificationExistingConflict
)

// EmailLookup is the single storage operation the classifier needs.
type EmailLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// NormalizeEmail produces the canonical matching key: trimmed and
// lower-cased. Matching is by exact equality of this key, nothing fuzzy.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ClassifyInBatch checks the email against the batch's seen set and
// registers it on first sight. Registration happens here, before any
// validation or storage work, so later occurrences are still flagged
// when the first occurrence was itself rejected.
func ClassifyInBatch(email string, seen map[string]struct{}) Classification {
	if _, dup := seen[email]; dup {
		return ClassificationInBatchDuplicate
	}
	seen[email] = struct{}{}
	return ClassificationNew
}

// ClassifyRow decides how one normalized row relates to persisted
// storage. In-batch duplicates are screened out by ClassifyInBatch
// beforehand, so storage is never consulted for them. For
// ClassificationExistingConflict the matched record is returned
// alongside.
func ClassifyRow(ctx context.Context, email string, lookup EmailLookup) (Classification, *models.UserDB, error) {
	existing, err := lookup.GetByEmail(ctx, email)
	if err != nil {
		return ClassificationNew, nil, err
	}
	if existing != nil {
		return ClassificationExistingConflict, existing, nil
	}
	return ClassificationNew, nil, nil
}
