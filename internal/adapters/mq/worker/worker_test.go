package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	queue "github.com/seahub/audithub/internal/adapters/mq/queue"
	worker "github.com/seahub/audithub/internal/adapters/mq/worker"
	"github.com/seahub/audithub/internal/domain/session"
	logging "github.com/seahub/audithub/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing.
type mockQueue struct {
	jobChan chan queue.Job
}

func newMockQueue() *mockQueue {
	return &mockQueue{
		jobChan: make(chan queue.Job, 10),
	}
}

func (mq *mockQueue) Dequeue(ctx context.Context) <-chan queue.Job {
	return mq.jobChan
}

func (mq *mockQueue) Close() error {
	close(mq.jobChan)
	return nil
}

func (mq *mockQueue) addJob(j queue.Job) {
	mq.jobChan <- j
}

type mockPusher struct {
	pushed map[string]string
	errors map[string]error
	mu     sync.RWMutex
}

func newMockPusher() *mockPusher {
	return &mockPusher{
		pushed: make(map[string]string),
		errors: make(map[string]error),
	}
}

func (mp *mockPusher) Push(ctx context.Context, rec session.Record, workspaceID string) (bool, error) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if err, exists := mp.errors[rec.ID]; exists {
		return false, err
	}
	if _, dup := mp.pushed[rec.ID]; dup {
		return false, nil
	}
	mp.pushed[rec.ID] = workspaceID
	return true, nil
}

func (mp *mockPusher) setError(recordID string, err error) {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.errors[recordID] = err
}

func (mp *mockPusher) getPush(recordID string) (string, bool) {
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	ws, exists := mp.pushed[recordID]
	return ws, exists
}

func TestPushWorker(t *testing.T) {
	convey.Convey("Given a new PushWorker", t, func() {
		_ = logging.Init()

		q := newMockQueue()
		pusher := newMockPusher()

		convey.Convey("When creating a worker with default options", func() {
			w := worker.NewPushWorker(q, pusher)

			convey.Convey("Then it should be created successfully", func() {
				convey.So(w, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When creating a worker with custom options", func() {
			w := worker.NewPushWorker(
				q, pusher,
				worker.WithName("test-worker"),
			)

			convey.Convey("Then it should be created successfully", func() {
				convey.So(w, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When running a worker", func() {
			w := worker.NewPushWorker(q, pusher)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go w.Run(ctx)
			time.Sleep(10 * time.Millisecond)

			convey.Convey("And when processing a job", func() {
				q.addJob(queue.Job{
					Record:      session.Record{ID: "rec-1", StaffName: "Alex"},
					WorkspaceID: "ws-1",
				})
				time.Sleep(50 * time.Millisecond)

				convey.Convey("Then the record lands in the workspace", func() {
					ws, pushed := pusher.getPush("rec-1")
					convey.So(pushed, convey.ShouldBeTrue)
					convey.So(ws, convey.ShouldEqual, "ws-1")
				})
			})

			convey.Convey("And when the push fails", func() {
				pusher.setError("rec-2", errors.New("push error"))
				q.addJob(queue.Job{
					Record:      session.Record{ID: "rec-2"},
					WorkspaceID: "ws-1",
				})
				time.Sleep(50 * time.Millisecond)

				convey.Convey("Then the record is not stored and the worker keeps going", func() {
					_, pushed := pusher.getPush("rec-2")
					convey.So(pushed, convey.ShouldBeFalse)

					q.addJob(queue.Job{
						Record:      session.Record{ID: "rec-3"},
						WorkspaceID: "ws-1",
					})
					time.Sleep(50 * time.Millisecond)

					_, pushed = pusher.getPush("rec-3")
					convey.So(pushed, convey.ShouldBeTrue)
				})
			})

			convey.Convey("And when shutting down", func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
				defer shutdownCancel()

				err := w.Shutdown(shutdownCtx)

				convey.Convey("Then it stops cleanly", func() {
					convey.So(err, convey.ShouldBeNil)
				})
			})
		})
	})
}

func TestPool(t *testing.T) {
	convey.Convey("Given a worker pool", t, func() {
		_ = logging.Init()

		q := newMockQueue()
		pusher := newMockPusher()

		convey.Convey("When creating a pool with an explicit size", func() {
			pool := worker.NewPool(3, q, pusher)

			convey.Convey("Then it has that many workers", func() {
				convey.So(pool.Size(), convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When creating a pool with a non-positive size", func() {
			pool := worker.NewPool(0, q, pusher)

			convey.Convey("Then it falls back to a CPU-based default", func() {
				convey.So(pool.Size(), convey.ShouldBeGreaterThan, 0)
			})
		})

		convey.Convey("When the pool drains the queue and shuts down", func() {
			pool := worker.NewPool(2, q, pusher)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			pool.Start(ctx)

			for _, id := range []string{"rec-a", "rec-b", "rec-c"} {
				q.addJob(queue.Job{
					Record:      session.Record{ID: id},
					WorkspaceID: "ws-1",
				})
			}
			time.Sleep(100 * time.Millisecond)

			err := pool.Shutdown(ctx)

			convey.Convey("Then every job was pushed before stopping", func() {
				convey.So(err, convey.ShouldBeNil)
				for _, id := range []string{"rec-a", "rec-b", "rec-c"} {
					_, pushed := pusher.getPush(id)
					convey.So(pushed, convey.ShouldBeTrue)
				}
			})
		})
	})
}
