// Package events publishes course and student lifecycle events to subscribers
package events

import (
	"context"
	"sync"

	"github.com/celestiaorg/courses/internal/logger"
)

// Type represents the type of lifecycle event
type Type string

const (
	// CourseCreated is emitted when a course is created
	CourseCreated Type = "course_created"
	// CourseUpdated is emitted when a course is renamed or its enrollments change
	CourseUpdated Type = "course_updated"
	// CourseDeleted is emitted when a course is deleted
	CourseDeleted Type = "course_deleted"
	// StudentCreated is emitted when a student is created
	StudentCreated Type = "student_created"
	// StudentDeleted is emitted when a student is deleted
	StudentDeleted Type = "student_deleted"

	// DefaultBufferSize is the default buffer size of the event channel
	DefaultBufferSize = 100
)

// Types lists every event type
func Types() []Type {
	return []Type{CourseCreated, CourseUpdated, CourseDeleted, StudentCreated, StudentDeleted}
}

// Event represents a lifecycle event
type Event struct {
	Type      Type   // The type of event
	CourseID  uint   // The course, zero for student events
	StudentID uint   // The student, zero for course events
	Students  []uint // Enrollments after the change, course events only
}

// Handler is a function that handles an event
type Handler func(context.Context, Event) error

// Bus dispatches published events to the handlers subscribed to their type.
// A nil *Bus discards everything published to it.
type Bus struct {
	handlers   map[Type][]Handler
	handlersMu sync.RWMutex
	events     chan Event
}

// NewBus creates a bus buffering up to size undelivered events
func NewBus(size int) *Bus {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Bus{
		handlers: make(map[Type][]Handler),
		events:   make(chan Event, size),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	logger.Debugf("registered handler for event type: %s", eventType)
}

// Publish queues an event for processing. It never blocks, the event is
// dropped when the buffer is full.
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}
	select {
	case b.events <- event:
		logger.Debugf("published event: %s", event.Type)
	default:
		logger.Warnf("event buffer full, dropping %s", event.Type)
	}
}

// Start starts the event processing loop, it stops when ctx is done
func (b *Bus) Start(ctx context.Context) {
	go b.process(ctx)
	logger.Info("started event processing loop")
}

func (b *Bus) process(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping event processing loop")
			return
		case event := <-b.events:
			b.handlersMu.RLock()
			eventHandlers := b.handlers[event.Type]
			b.handlersMu.RUnlock()

			for _, handler := range eventHandlers {
				go func(h Handler, e Event) {
					if err := h(ctx, e); err != nil {
						logger.Errorf("failed to handle event %s: %v", e.Type, err)
					}
				}(handler, event)
			}
		}
	}
}

// AuditLog writes one log line per event
func AuditLog(_ context.Context, event Event) error {
	fields := logger.Fields{"event": string(event.Type)}
	if event.CourseID != 0 {
		fields["course_id"] = event.CourseID
		fields["students"] = event.Students
	}
	if event.StudentID != 0 {
		fields["student_id"] = event.StudentID
	}
	logger.InfoWithFields("audit", fields)
	return nil
}
