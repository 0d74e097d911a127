// Package summarizer implements two-stage document summarization. Large
// documents are split into overlapping chunks, each chunk is summarized
// independently, and the combined segment summaries feed a final
// consolidating call. Small documents skip the segment stage. The final
// summary is persisted to the session's summary slot before it is
// returned, so the quiz generator can read it later.
package summarizer
