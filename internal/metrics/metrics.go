package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abstract_submissions_total",
		Help: "Abstract submissions accepted by the API.",
	})

	ReviewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abstract_reviews_total",
		Help: "Reviewer scores recorded.",
	})

	MailFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confirmation_mail_failures_total",
		Help: "Confirmation emails that could not be delivered.",
	})
)
