package store

import (
	"context"
	"errors"
	"fmt"

	"study-deadline-engine/internal/completion"
	"study-deadline-engine/internal/deadline/repository"
	"study-deadline-engine/internal/model"
	pkgLog "study-deadline-engine/pkg/log"
)

type implStore struct {
	l      pkgLog.Logger
	local  *LocalStore
	remote *RemoteStore
}

var _ completion.Store = &implStore{}

// New builds the completion store facade. Writes go to the durable
// record first and fall back to the local cache, except for guest
// scopes which never touch the durable store.
func New(l pkgLog.Logger, local *LocalStore, remote *RemoteStore) completion.Store {
	return &implStore{
		l:      l,
		local:  local,
		remote: remote,
	}
}

func (s *implStore) Toggle(ctx context.Context, sc model.Scope, req completion.ToggleRequest) (completion.Result, error) {
	current := req.Task.Completed()
	if cached, ok, err := s.local.Get(ctx, req.Task.ID); err != nil {
		s.l.Warnf(ctx, "completion.store.Toggle.local.Get: %v", err)
	} else if ok {
		current = cached
	}

	desired := !current
	newStatus := model.StatusCompleted
	if !desired {
		newStatus = model.DefaultStatus(req.Task.Type)
	}

	if sc.Guest {
		if err := s.local.Set(ctx, req.Task.ID, desired); err != nil {
			s.l.Errorf(ctx, "completion.store.Toggle.local.Set: %v", err)
			return completion.Result{}, fmt.Errorf("%w: %v", completion.ErrLocalStore, err)
		}
		return completion.Result{
			TaskID:    req.Task.ID,
			Completed: desired,
			NewStatus: newStatus,
			State:     completion.StateLocalOnly,
		}, nil
	}

	state := completion.StateSynced
	if err := s.remote.Write(ctx, req.CourseID, req.Task, newStatus, sc.UserID); err != nil {
		if errors.Is(err, repository.ErrNotOwner) {
			// The record provably belongs to someone else. Refuse the
			// toggle entirely rather than caching a state the durable
			// store will never accept.
			s.l.Warnf(ctx, "completion.store.Toggle: record %s owned by another user", req.CourseID)
			return completion.Result{
				TaskID:    req.Task.ID,
				Completed: current,
				NewStatus: req.Task.Status,
				State:     completion.StatePermissionDenied,
			}, nil
		}
		s.l.Warnf(ctx, "completion.store.Toggle.remote.Write: %v", err)
		state = completion.StateLocalOnly
	}

	if err := s.local.Set(ctx, req.Task.ID, desired); err != nil {
		s.l.Errorf(ctx, "completion.store.Toggle.local.Set: %v", err)
		if state == completion.StateLocalOnly {
			// Neither store took the write.
			return completion.Result{}, fmt.Errorf("%w: %v", completion.ErrLocalStore, err)
		}
	}

	return completion.Result{
		TaskID:    req.Task.ID,
		Completed: desired,
		NewStatus: newStatus,
		State:     state,
	}, nil
}

func (s *implStore) Snapshot(ctx context.Context) (map[string]bool, error) {
	snap, err := s.local.Snapshot(ctx)
	if err != nil {
		s.l.Errorf(ctx, "completion.store.Snapshot: %v", err)
		return nil, fmt.Errorf("%w: %v", completion.ErrLocalStore, err)
	}
	return snap, nil
}
