package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/community-board-api/internal/mocks"
	"github.com/community-board-api/internal/models"
)

func TestMockPostRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.Create(ctx, &models.Post{
			ID:       fmt.Sprintf("post-%d", i),
			Title:    fmt.Sprintf("title %d", i),
			Category: "자유",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	posts, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(posts))
	}
	for i, post := range posts {
		if post.ID != fmt.Sprintf("post-%d", i+1) {
			t.Errorf("Position %d: expected post-%d, got %s", i, i+1, post.ID)
		}
	}
}

func TestMockPostRepository_ListFiltersByCategory(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()

	repo.Create(ctx, &models.Post{ID: "p1", Category: "자유"})
	repo.Create(ctx, &models.Post{ID: "p2", Category: models.CategoryMeetup})

	meetups, err := repo.List(ctx, models.CategoryMeetup)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(meetups) != 1 || meetups[0].ID != "p2" {
		t.Errorf("Expected only the meetup post, got %v", meetups)
	}
}

func TestMockPostRepository_AddParticipantGuards(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()

	repo.Create(ctx, &models.Post{
		ID:              "event-1",
		Category:        models.CategoryMeetup,
		Participants:    []string{},
		MaxParticipants: 1,
	})

	joined, err := repo.AddParticipant(ctx, "event-1", "minji")
	if err != nil || !joined {
		t.Fatalf("Expected first join to succeed, joined=%v err=%v", joined, err)
	}

	// Full event: no second participant, no repeat join.
	joined, _ = repo.AddParticipant(ctx, "event-1", "haerin")
	if joined {
		t.Error("Join must fail once the event is full")
	}
	joined, _ = repo.AddParticipant(ctx, "event-1", "minji")
	if joined {
		t.Error("Repeat join must fail")
	}

	// Missing post.
	joined, _ = repo.AddParticipant(ctx, "missing", "minji")
	if joined {
		t.Error("Join against a missing post must fail")
	}

	post, _ := repo.GetByID(ctx, "event-1")
	if len(post.Participants) != 1 {
		t.Errorf("Expected exactly 1 participant, got %d", len(post.Participants))
	}
}

func TestMockCommentRepository_ListByPostNewestFirst(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()
	base := time.Now()

	for i := 1; i <= 3; i++ {
		repo.Create(ctx, &models.Comment{
			ID:        fmt.Sprintf("c%d", i),
			PostID:    "p1",
			Content:   fmt.Sprintf("comment %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	repo.Create(ctx, &models.Comment{ID: "other", PostID: "p2", CreatedAt: base})

	comments, err := repo.ListByPost(ctx, "p1")
	if err != nil {
		t.Fatalf("ListByPost failed: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("Expected 3 comments, got %d", len(comments))
	}
	if comments[0].ID != "c3" || comments[2].ID != "c1" {
		t.Errorf("Expected newest first, got %v", []string{comments[0].ID, comments[1].ID, comments[2].ID})
	}
}

func TestMockUserRepository_Lookups(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	ctx := context.Background()

	repo.Create(ctx, &models.User{ID: "u1", Username: "alice", Nickname: "minji"})

	byUsername, _ := repo.GetByUsername(ctx, "alice")
	if byUsername == nil || byUsername.ID != "u1" {
		t.Errorf("GetByUsername failed: %v", byUsername)
	}

	byNickname, _ := repo.GetByNickname(ctx, "minji")
	if byNickname == nil || byNickname.ID != "u1" {
		t.Errorf("GetByNickname failed: %v", byNickname)
	}

	exists, _ := repo.UsernameExists(ctx, "alice")
	if !exists {
		t.Error("Username should exist")
	}
	exists, _ = repo.NicknameExists(ctx, "nobody")
	if exists {
		t.Error("Nickname should not exist")
	}
}
