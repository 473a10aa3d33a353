package main

import "html/template"

// CareerNavigatorURL is the offer page the banner's call-to-action opens.
const CareerNavigatorURL = "https://www.ithriveai.com/career-navigator"

// careerNavigatorBanner is trusted markup, rendered unescaped.
const careerNavigatorBanner = `<div class="career-navigator" style="background-color: #0084FF; padding: 25px; border-radius: 10px; margin: 25px 0; box-shadow: 0 4px 12px rgba(0,0,0,0.15);">
    <div style="background-color: white; padding: 12px; border-radius: 8px; margin-bottom: 20px; text-align: center;">
        <h2 style="color: #0084FF; font-size: 24px; font-weight: bold; margin: 0;">Career Navigator</h2>
    </div>

    <p style="color: white; font-size: 18px; margin-bottom: 15px;">
        Don't just analyze your job risk. Turn it into a plan with personalized guidance from our Career Navigator service.
    </p>

    <div style="background-color: white; padding: 20px; border-radius: 8px; color: #333;">
        <ul style="text-align: left; margin: 0; padding-left: 20px;">
            <li style="margin-bottom: 10px;"><strong>Career Strength Profile</strong> - Discover the transferable skills AI can't replace</li>
            <li style="margin-bottom: 10px;"><strong>AI-Resilient Pathways</strong> - Matched roles with detailed transition plans</li>
            <li style="margin-bottom: 10px;"><strong>Curated Training</strong> - Recommended courses and certifications with the highest career ROI</li>
            <li><strong>Action Plan</strong> - Month-by-month steps toward a future-proof position</li>
        </ul>
    </div>

    <div style="text-align: center; margin-top: 20px;">
        <a class="career-navigator-cta" href="https://www.ithriveai.com/career-navigator" target="_blank" rel="noopener" style="display: inline-block; background-color: white; color: #0084FF; padding: 15px 30px; text-decoration: none; border-radius: 5px; font-weight: bold; font-size: 18px; box-shadow: 0 4px 8px rgba(0,0,0,0.1);">Explore Career Navigator</a>
    </div>

    <p style="color: white; font-size: 14px; margin: 15px 0 0 0; text-align: center;">
        Join professionals who've moved into higher-paying, AI-resilient roles.
    </p>
</div>
`

// CareerNavigatorBanner returns the Career Navigator upsell card.
func CareerNavigatorBanner() template.HTML {
	return template.HTML(careerNavigatorBanner)
}
