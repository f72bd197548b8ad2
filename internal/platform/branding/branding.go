// Package branding holds product naming shared by every surface.
package branding

// AppName is the user-facing product name.
const AppName = "Crypto Seal"

// ContributeURL points at the public source repository.
const ContributeURL = "https://github.com/saitddundar/crypto-seal-frontend"
