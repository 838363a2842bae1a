package calculator

import (
	"time"
)

// 基于行的任务分配，每个 task 负责 [start, end) 行
type task struct {
	start int
	end   int
}

type executor struct {
	workers int
}

func newExecutor(workers int) *executor {
	if workers < 1 {
		workers = 1
	}
	return &executor{workers: workers}
}

// splitTasks 把 [first, last) 划分为任务
// 每个 worker 的份额再对半拆成两个任务，余数按单行分配
func (e *executor) splitTasks(first, last int) []task {
	total := last - first
	if total <= 0 {
		return nil
	}
	taskLen, remainder := total/e.workers, total%e.workers
	tasks := make([]task, 0, e.workers*2+remainder)

	start := first
	if taskLen > 0 {
		if taskLen == 1 {
			for start < last-remainder {
				tasks = append(tasks, task{start: start, end: start + 1})
				start++
			}
		} else {
			half1, half2 := taskLen/2, taskLen/2
			if taskLen%2 == 1 {
				half2++
			}
			for start < last-remainder {
				if half1 != 0 {
					tasks = append(tasks, task{start: start, end: start + half1})
					start += half1
				}
				if half2 != 0 {
					tasks = append(tasks, task{start: start, end: start + half2})
					start += half2
				}
			}
		}
	}

	for i := 0; i < remainder; i++ {
		tasks = append(tasks, task{start: start, end: start + 1})
		start++
	}
	return tasks
}

// dispatchTask 分配任务并等待全部完成
// f 只能写入自己负责的行，汇总由调用方按行顺序完成
func (e *executor) dispatchTask(first, last int, f func(t task)) time.Duration {
	start := time.Now()
	tasks := e.splitTasks(first, last)
	if len(tasks) == 0 {
		return time.Since(start)
	}
	if e.workers == 1 {
		for _, t := range tasks {
			f(t)
		}
		return time.Since(start)
	}

	dispatchChan := make(chan task, len(tasks))
	doneSoFar := make(chan struct{}, len(tasks))
	workers := e.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}
	for i := 0; i < workers; i++ {
		go func() {
			for t := range dispatchChan {
				f(t)
				doneSoFar <- struct{}{}
			}
		}()
	}
	for _, t := range tasks {
		dispatchChan <- t
	}
	close(dispatchChan)

	for i := 0; i < len(tasks); i++ {
		<-doneSoFar
	}
	return time.Since(start)
}
