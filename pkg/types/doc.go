// Package types defines the employee record and table types shared by every
// stage of the report pipeline, along with the fixed department and region
// enumerations the synthesizer draws from.
package types
