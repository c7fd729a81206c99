// Package screenshot captures PNG screenshots of web pages with headless
// Chrome, driven through chromedp.
package screenshot
