package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rgpet_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	OrdersDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rgpet_orders_deleted_total",
		Help: "Total number of orders deleted from the admin panel.",
	})

	StatusUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rgpet_status_updates_total",
		Help: "Total number of successful order status updates.",
	})

	PhotoResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rgpet_photo_resolutions_total",
		Help: "Photo resolutions by outcome: cached, bucket, miss or error.",
	},
		[]string{"outcome"},
	)
)
