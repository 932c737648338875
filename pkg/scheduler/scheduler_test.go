package scheduler_test

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skuledger/skuledger/pkg/scheduler"
)

var _ = Describe("Scheduler", func() {
	var s *scheduler.Scheduler

	AfterEach(func() {
		if s != nil {
			s.Close()
		}
	})

	Describe("AddWork", func() {
		It("should add work and return a future", func() {
			s = scheduler.NewScheduler(1)

			work := func(ctx context.Context) (any, error) {
				return "done", nil
			}

			future := s.AddWork("test", work)
			Expect(future).NotTo(BeNil())

			var result scheduler.Result[any]
			Eventually(future.C(), 2*time.Second).Should(Receive(&result))
			Expect(result.Data).To(Equal("done"))
		})
	})

	Describe("Named work", func() {
		It("should run work one at a time in submission order with one worker", func() {
			s = scheduler.NewScheduler(1)

			order := make(chan int, 5)
			var futures []*scheduler.Future[scheduler.Result[any]]
			for i := range 5 {
				idx := i
				futures = append(futures, s.AddWork(fmt.Sprintf("job-%d", idx), func(ctx context.Context) (any, error) {
					order <- idx
					time.Sleep(10 * time.Millisecond)
					return idx, nil
				}))
			}

			for i, f := range futures {
				result, err := f.Wait(context.Background())
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Data).To(Equal(i))
			}

			close(order)
			var got []int
			for v := range order {
				got = append(got, v)
			}
			Expect(got).To(Equal([]int{0, 1, 2, 3, 4}))
		})

		It("should report pending work", func() {
			s = scheduler.NewScheduler(1)

			unblock := make(chan struct{})
			for range 3 {
				s.AddWork("blocked", func(ctx context.Context) (any, error) {
					<-unblock
					return nil, nil
				})
			}

			Eventually(s.Pending, time.Second).Should(Equal(3))
			close(unblock)
			Eventually(s.Pending, 2*time.Second).Should(Equal(0))
		})

		It("should surface a work error in the result", func() {
			s = scheduler.NewScheduler(1)

			future := s.AddWork("failing", func(ctx context.Context) (any, error) {
				return nil, errors.New("boom")
			})

			result, err := future.Wait(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Err).To(MatchError("boom"))
		})

		It("should turn a panic into an error result", func() {
			s = scheduler.NewScheduler(1)

			future := s.AddWork("panicking", func(ctx context.Context) (any, error) {
				panic("kaboom")
			})

			result, err := future.Wait(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Err).To(MatchError(ContainSubstring("kaboom")))
		})

		It("should stop waiting when the caller context ends", func() {
			s = scheduler.NewScheduler(1)

			unblock := make(chan struct{})
			defer close(unblock)
			future := s.AddWork("slow", func(ctx context.Context) (any, error) {
				<-unblock
				return nil, nil
			})

			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			_, err := future.Wait(ctx)
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})

	Describe("Run work", func() {
		It("should execute multiple work items", func() {
			s = scheduler.NewScheduler(2)

			results := make(chan int, 3)
			for i := range 3 {
				idx := i
				work := func(ctx context.Context) (any, error) {
					results <- idx
					return idx, nil
				}
				s.AddWork("test", work)
			}

			Eventually(func() int {
				return len(results)
			}, 2*time.Second, 100*time.Millisecond).Should(Equal(3))
		})
	})

	Describe("Cancel work", func() {
		It("should cancel work via future.Stop()", func() {
			s = scheduler.NewScheduler(1)

			cancelled := make(chan bool, 1)
			work := func(ctx context.Context) (any, error) {
				select {
				case <-ctx.Done():
					cancelled <- true
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return "completed", nil
				}
			}

			future := s.AddWork("test", work)
			time.Sleep(100 * time.Millisecond)
			future.Stop()

			Eventually(cancelled, 2*time.Second).Should(Receive(BeTrue()))
		})

		It("should cancel work when scheduler is closed", func() {
			s = scheduler.NewScheduler(1)

			cancelled := make(chan bool, 1)
			work := func(ctx context.Context) (any, error) {
				select {
				case <-ctx.Done():
					cancelled <- true
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return "completed", nil
				}
			}

			s.AddWork("test", work)
			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil // prevent AfterEach from closing again

			Eventually(cancelled, 2*time.Second).Should(Receive(BeTrue()))
		})
	})

	Describe("Goroutine cleanup", func() {
		It("should not leak goroutines after Close under load", func() {
			base := runtime.NumGoroutine()
			s = scheduler.NewScheduler(4)

			work := func(ctx context.Context) (any, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}

			for i := 0; i < 200; i++ {
				s.AddWork("test", work)
			}

			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil // prevent AfterEach from closing again

			Eventually(func() int {
				return runtime.NumGoroutine()
			}, 5*time.Second, 100*time.Millisecond).Should(BeNumerically("<=", base+10))
		})
	})

	Describe("Close behavior", func() {
		It("should return canceled when AddWork is called after Close", func() {
			s = scheduler.NewScheduler(1)
			s.Close()

			future := s.AddWork("test", func(ctx context.Context) (any, error) {
				return "done", nil
			})

			var result scheduler.Result[any]
			Eventually(future.C(), 1*time.Second).Should(Receive(&result))
			Expect(result.Err).To(MatchError(context.Canceled))
		})

		It("should wait for in-flight work to finish on Close", func() {
			s = scheduler.NewScheduler(1)

			started := make(chan struct{})
			unblock := make(chan struct{})
			work := func(ctx context.Context) (any, error) {
				close(started)
				<-unblock
				return "done", nil
			}

			s.AddWork("test", work)
			Eventually(started, 1*time.Second).Should(BeClosed())

			closeDone := make(chan struct{})
			go func() {
				s.Close()
				close(closeDone)
			}()

			Consistently(closeDone, 200*time.Millisecond).ShouldNot(BeClosed())
			close(unblock)
			Eventually(closeDone, 1*time.Second).Should(BeClosed())
			s = nil // prevent AfterEach from closing again
		})
	})
})
