package cmd

import (
	"testing"

	"pomoquest/internal/domain"
	"pomoquest/internal/store"
)

func addRequest(title string) store.AddTaskRequest {
	return store.AddTaskRequest{
		Title:    title,
		Category: domain.DefaultCategory,
		Priority: domain.PriorityMedium,
	}
}

func TestAddCmd_Structure(t *testing.T) {
	if addCmd.Use != "add [title]" {
		t.Errorf("addCmd.Use = %q, want %q", addCmd.Use, "add [title]")
	}

	for _, flag := range []string{"title", "description", "category", "priority", "estimate"} {
		if addCmd.Flags().Lookup(flag) == nil {
			t.Errorf("addCmd should have --%s flag", flag)
		}
	}
}

func TestAddCmd_Run(t *testing.T) {
	setupTestServices(t)
	addTitle, addDesc = "", ""
	addCategory = string(domain.CategoryStudy)
	addPriority = string(domain.PriorityHigh)
	addEstimate = 3

	if err := addCmd.RunE(addCmd, []string{"Read the docs"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	tasks := appStore.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	task := tasks[0]
	if task.Title != "Read the docs" {
		t.Errorf("Title = %q", task.Title)
	}
	if task.Category != domain.CategoryStudy || task.Priority != domain.PriorityHigh {
		t.Errorf("classification = %s/%s, want study/high", task.Category, task.Priority)
	}
	if task.PomodorosEstimated != 3 {
		t.Errorf("PomodorosEstimated = %d, want 3", task.PomodorosEstimated)
	}
}

func TestAddCmd_RejectsBadCategory(t *testing.T) {
	setupTestServices(t)
	addTitle = ""
	addCategory = "gardening"
	addPriority = string(domain.PriorityLow)
	addEstimate = 1

	if err := addCmd.RunE(addCmd, []string{"x"}); err == nil {
		t.Error("add should fail for an unknown category")
	}
	if len(appStore.Tasks()) != 0 {
		t.Error("no task should be stored on failure")
	}
}

func TestCompleteCmd_Run(t *testing.T) {
	setupTestServices(t)
	task, err := appStore.AddTask(addRequest("Finish report"))
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	if err := completeCmd.RunE(completeCmd, []string{task.ID}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if !appStore.Tasks()[0].Completed {
		t.Error("task should be completed")
	}

	if err := completeCmd.RunE(completeCmd, []string{"missing"}); err == nil {
		t.Error("complete should fail for an unknown id")
	}
}

func TestDeleteCmd_Run(t *testing.T) {
	setupTestServices(t)
	task, err := appStore.AddTask(addRequest("Short lived"))
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	if err := deleteCmd.RunE(deleteCmd, []string{task.ID}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(appStore.Tasks()) != 0 {
		t.Error("task should be gone")
	}

	if err := deleteCmd.RunE(deleteCmd, []string{task.ID}); err == nil {
		t.Error("delete should fail once the task is gone")
	}
}
