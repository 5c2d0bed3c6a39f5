package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/evently-app/evently/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// In-memory stores mirroring the repository contracts, including the filter
// guards that keep membership lists duplicate-free.

type fakeEventStore struct {
	events map[bson.ObjectID]*entity.Event
}

func newFakeEventStore(events ...*entity.Event) *fakeEventStore {
	s := &fakeEventStore{events: map[bson.ObjectID]*entity.Event{}}
	for _, e := range events {
		s.events[e.ID] = e
	}
	return s
}

func (s *fakeEventStore) FindOneByID(_ context.Context, ID bson.ObjectID) (*entity.Event, error) {
	event, ok := s.events[ID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *event
	return &copied, nil
}

func (s *fakeEventStore) Create(_ context.Context, event entity.Event) (*entity.Event, error) {
	event.ID = bson.NewObjectID()
	s.events[event.ID] = &event
	return &event, nil
}

func (s *fakeEventStore) UpdateOne(_ context.Context, event entity.Event) (*entity.Event, error) {
	existing, ok := s.events[event.ID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	// Owner edits write only the editable fields; membership and the
	// moderation gate keep their stored values.
	updated := *existing
	if event.Name != "" {
		updated.Name = event.Name
	}
	if event.Description != "" {
		updated.Description = event.Description
	}
	if event.Banner != "" {
		updated.Banner = event.Banner
	}
	if !event.StartDateTime.IsZero() {
		updated.StartDateTime = event.StartDateTime
	}
	if !event.EndDateTime.IsZero() {
		updated.EndDateTime = event.EndDateTime
	}
	if event.Location != nil {
		updated.Location = event.Location
	}
	s.events[event.ID] = &updated
	copied := updated
	return &copied, nil
}

func (s *fakeEventStore) PushFavorite(_ context.Context, eventID, userID bson.ObjectID) (*entity.Event, error) {
	event, ok := s.events[eventID]
	if !ok || event.IsFavoritedBy(userID) {
		return nil, mongo.ErrNoDocuments
	}
	event.Favorite = append(event.Favorite, entity.Favorite{UserID: userID})
	copied := *event
	return &copied, nil
}

func (s *fakeEventStore) PullFavorite(_ context.Context, eventID, userID bson.ObjectID) (*entity.Event, error) {
	event, ok := s.events[eventID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	kept := event.Favorite[:0]
	for _, f := range event.Favorite {
		if f.UserID != userID {
			kept = append(kept, f)
		}
	}
	event.Favorite = kept
	copied := *event
	return &copied, nil
}

func (s *fakeEventStore) FindManyFavoritedBy(_ context.Context, userID bson.ObjectID) ([]*entity.Event, error) {
	var events []*entity.Event
	for _, e := range s.events {
		if e.IsFavoritedBy(userID) {
			events = append(events, e)
		}
	}
	return events, nil
}

func (s *fakeEventStore) FindManyTrending(_ context.Context, nowUTC time.Time) ([]*entity.Event, error) {
	var events []*entity.Event
	for _, e := range s.events {
		if e.IsPermitted && e.StartDateTime.After(nowUTC) {
			events = append(events, e)
		}
	}
	return events, nil
}

type followKey struct {
	eventID    bson.ObjectID
	followerID bson.ObjectID
}

type fakeFollowStore struct {
	follows map[followKey]*entity.Follow
}

func newFakeFollowStore() *fakeFollowStore {
	return &fakeFollowStore{follows: map[followKey]*entity.Follow{}}
}

func (s *fakeFollowStore) FindOneByEventIDAndFollowerID(_ context.Context, eventID, followerID bson.ObjectID) (*entity.Follow, error) {
	follow, ok := s.follows[followKey{eventID, followerID}]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return follow, nil
}

func (s *fakeFollowStore) FindManyByEventID(_ context.Context, eventID bson.ObjectID) ([]*entity.Follow, error) {
	var follows []*entity.Follow
	for key, f := range s.follows {
		if key.eventID == eventID {
			follows = append(follows, f)
		}
	}
	return follows, nil
}

func (s *fakeFollowStore) Create(_ context.Context, eventID, followerID bson.ObjectID) (*entity.Follow, error) {
	key := followKey{eventID, followerID}
	if existing, ok := s.follows[key]; ok {
		return existing, nil
	}
	follow := &entity.Follow{
		ID:             bson.NewObjectID(),
		EventID:        eventID,
		FollowerUserID: followerID,
		CreatedAt:      time.Now().UTC(),
	}
	s.follows[key] = follow
	return follow, nil
}

func (s *fakeFollowStore) DeleteOneByEventIDAndFollowerID(_ context.Context, eventID, followerID bson.ObjectID) error {
	key := followKey{eventID, followerID}
	if _, ok := s.follows[key]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(s.follows, key)
	return nil
}

type fakeUserStore struct {
	users map[bson.ObjectID]*entity.User
}

func newFakeUserStore(users ...*entity.User) *fakeUserStore {
	s := &fakeUserStore{users: map[bson.ObjectID]*entity.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) FindOneByID(_ context.Context, ID bson.ObjectID) (*entity.User, error) {
	user, ok := s.users[ID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

type dispatchedNotification struct {
	actor        *entity.User
	targetUserID bson.ObjectID
	event        *entity.Event
	typ          string
	typeID       string
}

type fakeNotifier struct {
	dispatched []dispatchedNotification
}

func (n *fakeNotifier) Dispatch(actor *entity.User, targetUserID bson.ObjectID, event *entity.Event, notificationType, typeID string) {
	n.dispatched = append(n.dispatched, dispatchedNotification{
		actor:        actor,
		targetUserID: targetUserID,
		event:        event,
		typ:          notificationType,
		typeID:       typeID,
	})
}

type fakeBookingStore struct {
	bookings map[bson.ObjectID]*entity.Booking
}

func newFakeBookingStore(bookings ...*entity.Booking) *fakeBookingStore {
	s := &fakeBookingStore{bookings: map[bson.ObjectID]*entity.Booking{}}
	for _, b := range bookings {
		s.bookings[b.ID] = b
	}
	return s
}

func (s *fakeBookingStore) Create(_ context.Context, userID, eventID bson.ObjectID) (*entity.Booking, error) {
	booking := &entity.Booking{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		EventID:   eventID,
		Status:    entity.BookingStatusActive,
		CreatedAt: time.Now().UTC(),
	}
	s.bookings[booking.ID] = booking
	return booking, nil
}

func (s *fakeBookingStore) ExistsActive(_ context.Context, userID, eventID bson.ObjectID) (bool, error) {
	for _, b := range s.bookings {
		if b.UserID == userID && b.EventID == eventID && b.Status == entity.BookingStatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeBookingStore) CancelOneByIDAndUserID(_ context.Context, ID, userID bson.ObjectID) (*entity.Booking, error) {
	booking, ok := s.bookings[ID]
	if !ok || booking.UserID != userID {
		return nil, mongo.ErrNoDocuments
	}
	booking.Status = entity.BookingStatusCancelled
	copied := *booking
	return &copied, nil
}

func (s *fakeBookingStore) FindManyByUserID(_ context.Context, userID bson.ObjectID, skip, limit int64) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	if skip > int64(len(bookings)) {
		skip = int64(len(bookings))
	}
	bookings = bookings[skip:]
	if limit > 0 && limit < int64(len(bookings)) {
		bookings = bookings[:limit]
	}
	return bookings, nil
}

func (s *fakeBookingStore) CountByUserID(_ context.Context, userID bson.ObjectID) (int64, error) {
	var count int64
	for _, b := range s.bookings {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeReviewStore struct {
	reviews map[bson.ObjectID]*entity.Review
}

func newFakeReviewStore(reviews ...*entity.Review) *fakeReviewStore {
	s := &fakeReviewStore{reviews: map[bson.ObjectID]*entity.Review{}}
	for _, r := range reviews {
		s.reviews[r.ID] = r
	}
	return s
}

func (s *fakeReviewStore) Create(_ context.Context, review entity.Review) (*entity.Review, error) {
	review.ID = bson.NewObjectID()
	s.reviews[review.ID] = &review
	return &review, nil
}

func (s *fakeReviewStore) FindOneByID(_ context.Context, ID bson.ObjectID) (*entity.Review, error) {
	review, ok := s.reviews[ID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *review
	return &copied, nil
}

func (s *fakeReviewStore) ExistsByEventIDAndUserID(_ context.Context, eventID, userID bson.ObjectID) (bool, error) {
	for _, r := range s.reviews {
		if r.EventID == eventID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeReviewStore) FindManyByEventID(_ context.Context, eventID bson.ObjectID) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, r := range s.reviews {
		if r.EventID == eventID {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

func (s *fakeReviewStore) PushVote(_ context.Context, reviewID, userID bson.ObjectID, field string) (*entity.Review, error) {
	review, ok := s.reviews[reviewID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	votes := s.votes(review, field)
	for _, v := range *votes {
		if v.UserID == userID {
			return nil, mongo.ErrNoDocuments
		}
	}
	*votes = append(*votes, entity.Vote{UserID: userID})
	copied := *review
	return &copied, nil
}

func (s *fakeReviewStore) PullVote(_ context.Context, reviewID, userID bson.ObjectID, field string) (*entity.Review, error) {
	review, ok := s.reviews[reviewID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	votes := s.votes(review, field)
	kept := (*votes)[:0]
	for _, v := range *votes {
		if v.UserID != userID {
			kept = append(kept, v)
		}
	}
	*votes = kept
	copied := *review
	return &copied, nil
}

func (s *fakeReviewStore) votes(review *entity.Review, field string) *[]entity.Vote {
	if field == "disLike" {
		return &review.DisLike
	}
	return &review.Like
}

// fakeFeedWriter stands in for the notification feed store.
type fakeFeedWriter struct {
	mu     sync.Mutex
	err    error
	writes []entity.Notification
	done   chan struct{}
}

func newFakeFeedWriter(err error) *fakeFeedWriter {
	return &fakeFeedWriter{err: err, done: make(chan struct{}, 16)}
}

func (w *fakeFeedWriter) Append(_ context.Context, userID string, notification entity.Notification) error {
	w.mu.Lock()
	w.writes = append(w.writes, notification)
	w.mu.Unlock()
	w.done <- struct{}{}
	return w.err
}

func (w *fakeFeedWriter) wait(timeout time.Duration) bool {
	select {
	case <-w.done:
		return true
	case <-time.After(timeout):
		return false
	}
}
