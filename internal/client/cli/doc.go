// Package cli is the interactive terminal front end of the BidCars client.
//
// It wires the session, the API client, and the browsing view-model into a
// read–eval–print loop. The package renders state and forwards user intents;
// all derivation and the bid-placement workflow live in the browser package,
// and all business rules live behind the remote API.
package cli
