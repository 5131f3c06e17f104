package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of a real-world task.
type TaskStatus string

const (
	TaskPending  TaskStatus = "pending"
	TaskApproved TaskStatus = "approved"
	TaskRejected TaskStatus = "rejected"
)

// Task is a guardian-created real-world chore with a coin reward.
type Task struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Reward     int        `json:"reward"`
	Status     TaskStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt time.Time  `json:"resolved_at,omitempty"`
}

// TaskBoard holds a child's tasks. The guardian side resolves tasks from its
// own connection while the child may be mid-quiz, so the board carries its
// own mutex and the payout goes through the ledger's atomic credit path.
type TaskBoard struct {
	mu    sync.Mutex
	tasks []*Task
	clock func() time.Time
}

// NewTaskBoard creates an empty board.
func NewTaskBoard() *TaskBoard {
	return &TaskBoard{clock: time.Now}
}

// Add creates a pending task and returns a copy of it.
// A negative reward is clamped to zero.
func (b *TaskBoard) Add(title string, reward int) Task {
	if reward < 0 {
		reward = 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	t := &Task{
		ID:        uuid.New().String(),
		Title:     title,
		Reward:    reward,
		Status:    TaskPending,
		CreatedAt: b.clock(),
	}
	b.tasks = append(b.tasks, t)
	return *t
}

// Approve marks a pending task approved and credits its reward to the
// wallet. Resolution is one-shot: approving a task that is not pending
// returns false and moves no coins.
func (b *TaskBoard) Approve(id string, wallet *Ledger) bool {
	b.mu.Lock()
	t := b.findLocked(id)
	if t == nil || t.Status != TaskPending {
		b.mu.Unlock()
		return false
	}
	t.Status = TaskApproved
	t.ResolvedAt = b.clock()
	reward := t.Reward
	title := t.Title
	b.mu.Unlock()

	if wallet != nil && reward > 0 {
		wallet.Credit(reward, TxTaskReward, "task approved: "+title)
	}
	return true
}

// Reject marks a pending task rejected. One-shot like Approve.
func (b *TaskBoard) Reject(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := b.findLocked(id)
	if t == nil || t.Status != TaskPending {
		return false
	}
	t.Status = TaskRejected
	t.ResolvedAt = b.clock()
	return true
}

// Tasks returns copies of every task in creation order.
func (b *TaskBoard) Tasks() []Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Task, 0, len(b.tasks))
	for _, t := range b.tasks {
		out = append(out, *t)
	}
	return out
}

// Pending returns copies of the unresolved tasks.
func (b *TaskBoard) Pending() []Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Task
	for _, t := range b.tasks {
		if t.Status == TaskPending {
			out = append(out, *t)
		}
	}
	return out
}

func (b *TaskBoard) findLocked(id string) *Task {
	for _, t := range b.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
