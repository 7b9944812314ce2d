package utils

import (
	"runtime"

	"github.com/godist/ldagibbs/core/gibbs"
	"github.com/golang/glog"
	"github.com/wangkuiyi/parallel"
)

type TopicDesc struct {
	Id     int
	Nt     int64
	Tokens []TokenDesc
}

type TokenDesc struct {
	Word  string
	Count int64
}

// DescribeTopics lists at most maxWordsPerTopic top words of every
// topic, or all of them if maxWordsPerTopic is negative.  Topics are
// described in parallel; m must not be swept until
// it returns.
func DescribeTopics(m *gibbs.Model, maxWordsPerTopic int) []*TopicDesc {
	glog.V(1).Infof("Generating topic descriptions ... ")
	descs := make([]*TopicDesc, m.NumTopics())
	v := m.Vocabulary()

	e := parallel.ForN(0, m.NumTopics(), 1, 2*runtime.NumCPU(), func(topic int) {
		h := m.GetTopWords(topic).Truncate(maxWordsPerTopic)
		descs[topic] = &TopicDesc{
			Id:     topic,
			Nt:     m.Counts().TopicTotal(topic),
			Tokens: make([]TokenDesc, 0, h.Len())}
		h.ForEach(func(w int, count int64) error {
			descs[topic].Tokens = append(descs[topic].Tokens,
				TokenDesc{v.Token(int32(w)), count})
			return nil
		})
	})
	if e != nil {
		glog.Fatalf("Failed describing topics: %v", e)
	}

	glog.V(1).Infof("Done generating topic descriptions.")
	return descs
}
