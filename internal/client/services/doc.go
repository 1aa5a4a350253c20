// Package services holds the client's state services: one per domain
// (session, moods, journals, nutrition, favorites, exercises, chat).
//
// Every service keeps an in-memory copy of its collection and follows the
// same contract:
//   - Load replaces the collection wholesale; on failure the previous
//     collection is kept.
//   - Create, Update and Delete call the backend first and touch local state
//     only on success. Updating or deleting an unknown id is a no-op locally.
//   - Err holds the last operation's failure as a message; it is cleared
//     when the next operation starts. Operations also return the error.
//   - Input is validated before any network call (see ValidationError).
//
// Remote calls run outside the state lock; concurrent writes to the same
// service resolve in response order.
package services
