// Package extract isolates the JSON array candidate inside raw vision-model
// output. Well-behaved responses wrap the array in a markdown ```json fence;
// degraded ones bury it in prose or cut it off mid-object. [Array] tries the
// fence convention first, falls back to bracket-depth scanning, and always
// returns a string; deciding whether that string actually parses is the
// caller's job.
package extract
