package utils

import "time"

// BookingSessionPrefix is the prefix used for Redis booking-session keys.
const BookingSessionPrefix = "booking:session:"

// BookingSessionTTL is how long an unconfirmed booking session survives.
const BookingSessionTTL = 10 * time.Minute
