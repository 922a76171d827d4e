// Package naming parses figure filenames into a chapter/section/subsection
// [Key] and formats keys back into canonical zero-padded filenames.
//
// Wire format:
//
//	source stem   3_2      3_2_1
//	output name   03_02.png  03_02_01.png
//
// A stem with other than two or three "_"-separated fields is not a figure
// name at all ([ErrNotApplicable]); a stem with the right shape but a
// non-numeric or negative field is malformed ([MalformedStemError]).
package naming
