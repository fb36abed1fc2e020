// Package session gates access to the drive and holds per-session state.
//
// # Lifecycle
//
//  1. Locked: a Session starts unauthenticated. The UI shows the access card.
//  2. Login: the entered code is compared with the shared secret held by the
//     Gate. A mismatch sets LoginFailed so the card can show its error; there
//     is no lockout. A match marks the session authenticated and creates a
//     fresh chat bridge.
//  3. Logout: any in-flight reply is canceled and the bridge is discarded
//     together with its transcript. The session returns to Locked.
//
// The authenticated flag lives on the Session value held by the app model.
// Nothing in this package is process-global.
package session
