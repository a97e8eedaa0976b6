// Package domain contains the core entities of the application: acronyms and
// the users who own them, together with their presence checks and the
// validation errors those checks produce. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
