package ykoath

import (
	"errors"
	"slices"
)

// fakeCard replays scripted reply frames and records every command.
type fakeCard struct {
	replies [][]byte
	err     error
	sent    [][]byte
}

func newFakeCard(replies ...[]byte) *fakeCard {
	return &fakeCard{replies: replies}
}

func (f *fakeCard) Transmit(cmd []byte) ([]byte, error) {
	f.sent = append(f.sent, slices.Clone(cmd))
	if f.err != nil {
		return nil, f.err
	}
	if len(f.replies) == 0 {
		return nil, errors.New("fake card: no reply scripted")
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

type sizedCard struct {
	*fakeCard
	size int
}

func (s sizedCard) MaxFrameSize() int {
	return s.size
}
