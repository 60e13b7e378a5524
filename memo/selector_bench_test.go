package memo_test

import (
	"testing"

	"github.com/on-the-ground/computed_views/memo"
)

func naiveActiveCount(s appState) int {
	n := 0
	for _, u := range s.Users {
		if u.Active {
			n++
		}
	}
	return n
}

func benchState() appState {
	users := make([]user, 10_000)
	for i := range users {
		users[i].Active = i%3 == 0
	}
	return appState{Users: users}
}

func BenchmarkNaiveActiveCount(b *testing.B) {
	state := benchState()
	for i := 0; i < b.N; i++ {
		_ = naiveActiveCount(state)
	}
}

func BenchmarkSelectedActiveCount(b *testing.B) {
	state := benchState()
	sel := memo.Select1(selectUsers, func(users []user) int {
		return naiveActiveCount(appState{Users: users})
	})

	for i := 0; i < b.N; i++ {
		_ = sel.Select(state)
	}
}
