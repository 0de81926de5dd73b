// Package account provides the identity model of the e-waste pickup service:
// accounts, roles, and the Principal value object that represents the
// resolved caller of one operation.
//
// The package includes:
//   - Account: the aggregate backing registration and credential issuance
//   - Role: the capability classes requester, agent, and admin
//   - Principal: the per-operation caller identity and the pure
//     role-authorization decision (Principal.Authorize)
//
// Key business rules:
//   - A principal carries the id and role embedded in its credential at
//     issuance time; the role is deliberately not re-resolved against
//     storage on every call
//   - An empty required-role set means authentication only: any resolved
//     principal is admitted
//   - Role names are flat; no role implies another
package account
