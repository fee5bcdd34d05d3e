package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calendarsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mastermind_calendars_generated_total",
		Help: "Number of calendars generated successfully.",
	})
	postsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mastermind_posts_generated_total",
		Help: "Number of posts generated across all calendars.",
	})
	commentsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mastermind_comments_generated_total",
		Help: "Number of comments generated across all calendars.",
	})
	generationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mastermind_generation_failures_total",
		Help: "Number of calendar generation runs that failed.",
	})
)
