package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
	"github.com/coffeepanda/dashcheck/pkg/domain/model"
	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	runsCollection   = "runs"
	tutorsCollection = "tutors"
)

// Firestore implements ResultRepository with Firestore.
// Results live at runs/<run id>/tutors/<account id>.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.ResultRepository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad credentials or project
	_, err = client.Collection(runsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{client: client}, nil
}

func (f *Firestore) runDoc(id types.RunID) *firestore.DocumentRef {
	return f.client.Collection(runsCollection).Doc(id.String())
}

// PutRun saves a run document
func (f *Firestore) PutRun(ctx context.Context, run *model.Run) error {
	if run == nil {
		return goerr.New("run is nil")
	}
	if err := run.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid run")
	}

	if _, err := f.runDoc(run.ID).Set(ctx, run); err != nil {
		return goerr.Wrap(err, "failed to save run to firestore", goerr.V("run_id", run.ID))
	}
	return nil
}

// GetRun retrieves a run document
func (f *Firestore) GetRun(ctx context.Context, id types.RunID) (*model.Run, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := f.runDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrRunNotFound, "failed to get run", goerr.V("run_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get run from firestore", goerr.V("run_id", id))
	}

	var run model.Run
	if err := doc.DataTo(&run); err != nil {
		return nil, goerr.Wrap(err, "failed to decode run", goerr.V("run_id", id))
	}
	return &run, nil
}

// PutTutorResult saves the result of one tutor under its run
func (f *Firestore) PutTutorResult(ctx context.Context, result *model.TutorResult) error {
	if result == nil {
		return goerr.New("result is nil")
	}
	if err := result.RunID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid result")
	}

	ref := f.runDoc(result.RunID).Collection(tutorsCollection).Doc(result.TutorID.String())
	if _, err := ref.Set(ctx, result); err != nil {
		return goerr.Wrap(err, "failed to save tutor result to firestore",
			goerr.V("run_id", result.RunID),
			goerr.V("tutor", result.TutorName))
	}
	return nil
}

// ListTutorResults lists the results of a run ordered by check time
func (f *Firestore) ListTutorResults(ctx context.Context, id types.RunID) ([]*model.TutorResult, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	iter := f.runDoc(id).Collection(tutorsCollection).Documents(ctx)
	defer iter.Stop()

	var results []*model.TutorResult
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate tutor results", goerr.V("run_id", id))
		}

		var result model.TutorResult
		if err := doc.DataTo(&result); err != nil {
			return nil, goerr.Wrap(err, "failed to decode tutor result",
				goerr.V("run_id", id),
				goerr.V("doc", doc.Ref.ID))
		}
		results = append(results, &result)
	}

	// Sorted in memory to avoid an index on checked_at
	sortResults(results)
	return results, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
