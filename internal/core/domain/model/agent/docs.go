// Package agent contains the recycling-agent business profile.
//
// A Profile describes an agent account's public face: business name,
// offered collection services, and accepted e-waste categories. Profiles
// are created unverified and become visible in the public agent directory
// only after an administrator verifies them.
package agent
