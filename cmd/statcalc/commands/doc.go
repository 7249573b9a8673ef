// Package commands defines the statcalc CLI.
//
// Commands
//
//   - gratuity      Gratuity payable on leaving service
//   - pf, gpf       Provident fund contribution (EPF or GPF)
//   - nps           National pension scheme contribution
//   - esi           Employee state insurance contribution
//   - leave         Annual leave entitlement
//   - checklist     Compliance checklist for an establishment
//   - holidays      Holiday calendar for a year and state
//   - working-days  Approximate working days for a year and state
//   - report        Write any of the above calculations as a PDF
//
// # Implementation
//
// Calculation flags are plain strings collected into url.Values and handed
// to api.RequestFromValues, so the CLI applies exactly the defaults and
// required-field checks of the HTTP API. Output is indented JSON.
package commands
